package logger

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that the console mutex prevents
// garbled output when multiple goroutines log simultaneously at different levels.
func TestConcurrency_MultipleLevels(t *testing.T) {
	t.Setenv("JOURNAL_STREAM", "")
	var stdoutBuf, stderrBuf bytes.Buffer
	oldStdout, oldStderr := outStdout, outStderr
	defer func() { outStdout, outStderr = oldStdout, oldStderr }()
	outStdout = &stdoutBuf
	outStderr = &stderrBuf

	log := Build(nil, WithConsole(DefaultConsole()), WithColor(ColorNever)).New("stress")

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				log.Debug("goroutine", id, "debug", j)
				log.Info("goroutine", id, "info", j)
				log.Warn("goroutine", id, "warn", j)
				log.Error("goroutine", id, "error", j)
			}
		}(i)
	}
	wg.Wait()

	output := stdoutBuf.String() + stderrBuf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	expectedLines := numGoroutines * messagesPerGoroutine * 4
	if len(lines) != expectedLines {
		t.Fatalf("expected %d log lines, got %d", expectedLines, len(lines))
	}

	// Each line should start with the label and carry one level tag.
	for i, line := range lines {
		hasLevelTag := strings.HasPrefix(line, "[stress] [DEBUG] goroutine ") ||
			strings.HasPrefix(line, "[stress] [INFO] goroutine ") ||
			strings.HasPrefix(line, "[stress] [WARN] goroutine ") ||
			strings.HasPrefix(line, "[stress] [ERROR] goroutine ")

		if !hasLevelTag {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_SubLoggerIdentity verifies that racing Sub calls for the
// same label all observe one instance.
func TestConcurrency_SubLoggerIdentity(t *testing.T) {
	console, _ := newRecordingConsole()
	root := Build(nil, WithConsole(console)).New("root")

	const numGoroutines = 100
	results := make([]*Logger, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	start := make(chan struct{})
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			<-start
			results[id] = root.Sub(":shared")
		}(i)
	}
	close(start)
	wg.Wait()

	for i, l := range results {
		if l != results[0] {
			t.Fatalf("goroutine %d got a different sub-logger instance", i)
		}
	}
}

// TestConcurrency_ProviderChanges flips the configured level while
// goroutines log and checks that every call saw exactly one provider read.
func TestConcurrency_ProviderChanges(t *testing.T) {
	console, rec := newRecordingConsole()
	var level atomic.Int64
	var reads atomic.Int64
	level.Store(int64(LevelDebug))

	log := Build(func() Config {
		reads.Add(1)
		return Config{LogLevel: Level(level.Load())}
	}, WithConsole(console)).New("flip")

	const numGoroutines = 50
	const messagesPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines + 1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				level.Store(int64(LevelNone))
			} else {
				level.Store(int64(LevelDebug))
			}
		}
	}()
	for n := 0; n < numGoroutines; n++ {
		go func() {
			defer wg.Done()
			for n := 0; n < messagesPerGoroutine; n++ {
				log.Info("tick")
			}
		}()
	}
	wg.Wait()

	if got, want := reads.Load(), int64(numGoroutines*messagesPerGoroutine); got != want {
		t.Fatalf("expected %d provider reads, got %d", want, got)
	}
	if n := len(rec.snapshot()); n > numGoroutines*messagesPerGoroutine {
		t.Fatalf("more emissions (%d) than calls", n)
	}
}
