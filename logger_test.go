package rosmsg

import "testing"

// testLogger implements the StdLogger interface and records the text in the
// logs of the given T passed from Test functions.
//
// nolint
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Print(v ...interface{}) {
	if l.t != nil {
		l.t.Helper()
		l.t.Log(v...)
	}
}

func (l *testLogger) Printf(format string, v ...interface{}) {
	if l.t != nil {
		l.t.Helper()
		l.t.Logf(format, v...)
	}
}

func (l *testLogger) Println(v ...interface{}) {
	if l.t != nil {
		l.t.Helper()
		l.t.Log(v...)
	}
}

// countingLogger counts the lines logged through it.
type countingLogger struct {
	testLogger
	lines int
}

func (l *countingLogger) Printf(format string, v ...interface{}) {
	l.lines++
	l.testLogger.Printf(format, v...)
}

func (l *countingLogger) Println(v ...interface{}) {
	l.lines++
	l.testLogger.Println(v...)
}

// withLogger swaps Logger for the duration of a test.
func withLogger(t *testing.T, logger StdLogger) {
	t.Helper()
	old := Logger
	Logger = logger
	t.Cleanup(func() { Logger = old })
}
