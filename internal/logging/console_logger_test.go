package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLogger_InfoGoesToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewConsoleLoggerTo(false, &out, &errOut)

	logger.Info("Loading data: %s", "messages.csv")

	if got, want := out.String(), "Loading data: messages.csv\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if errOut.Len() != 0 {
		t.Errorf("Info must not write to stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_VerboseGated(t *testing.T) {
	var out, errOut bytes.Buffer

	NewConsoleLoggerTo(false, &out, &errOut).Verbose("hidden")
	if errOut.Len() != 0 {
		t.Errorf("disabled verbose produced output: %q", errOut.String())
	}

	NewConsoleLoggerTo(true, &out, &errOut).Verbose("shown %d", 1)
	if got, want := errOut.String(), "[VERBOSE] shown 1\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestConsoleLogger_ErrorPrefixed(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewConsoleLoggerTo(false, &out, &errOut)

	logger.Error("save failed: %v", "disk full")

	if got, want := errOut.String(), "[ERROR] save failed: disk full\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestConsoleLogger_NoFormatArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewConsoleLoggerTo(false, &out, &errOut)

	// A literal percent must not be mangled when no args are supplied.
	logger.Info("progress: 100%")

	if got, want := out.String(), "progress: 100%\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewConsoleLoggerTo(true, &out, &errOut)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	combined := out.String() + errOut.String()
	lines := strings.Split(strings.TrimSpace(combined), "\n")
	if len(lines) != 30 {
		t.Errorf("expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	logger := NewNullLogger()

	// Should complete without panic and without touching any stream.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()
}
