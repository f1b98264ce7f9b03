package logger

import (
	"os"
	"strings"
)

// ModuleLabel derives a label from a source path or "file:" URL, relative to
// the working directory. Paths outside the working directory are returned
// with forward slashes only.
func ModuleLabel(identity string) string {
	wd, err := os.Getwd()
	if err != nil {
		return RelativeLabel(identity, "")
	}
	return RelativeLabel(identity, wd)
}

// RelativeLabel strips everything up to and including root from identity and
// normalizes back-slashes to forward slashes. identity may be a plain path or
// a "file:" URL; root may use either slash style.
func RelativeLabel(identity, root string) string {
	label := strings.ReplaceAll(identity, `\`, "/")
	label = strings.TrimPrefix(label, "file://")
	label = strings.TrimPrefix(label, "file:")

	root = strings.TrimRight(strings.ReplaceAll(root, `\`, "/"), "/")
	if root == "" {
		return label
	}
	if i := strings.Index(label, root+"/"); i >= 0 {
		return label[i+len(root)+1:]
	}
	return label
}
