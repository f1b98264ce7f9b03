package logger

import "strings"

// ErrorChain renders err followed by one "Caused by: " line per wrapped
// error, depth first through errors.Join and multi-%w wrappers. Each line
// holds only the text an error adds in front of its cause, so
// fmt.Errorf("read: %w", io.EOF) renders as "read\nCaused by: EOF".
func ErrorChain(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	writeChain(&b, err)
	return b.String()
}

func writeChain(b *strings.Builder, err error) {
	msg := err.Error()
	var causes []error
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if c := u.Unwrap(); c != nil {
			causes = []error{c}
		}
	case interface{ Unwrap() []error }:
		for _, c := range u.Unwrap() {
			if c != nil {
				causes = append(causes, c)
			}
		}
	}

	switch {
	case len(causes) == 0:
		b.WriteString(msg)
		return
	case len(causes) == 1:
		own := strings.TrimSuffix(msg, causes[0].Error())
		if own == "" {
			writeChain(b, causes[0])
			return
		}
		if own != msg {
			own = strings.TrimRight(own, ": ")
		}
		b.WriteString(own)
		b.WriteString("\nCaused by: ")
		writeChain(b, causes[0])
		return
	}

	// errors.Join says nothing of its own: render the branches one per line.
	if msg == joined(causes) {
		for i, c := range causes {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeChain(b, c)
		}
		return
	}
	b.WriteString(msg)
	for _, c := range causes {
		b.WriteString("\nCaused by: ")
		writeChain(b, c)
	}
}

func joined(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}
