package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("stage complete") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("stage complete") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("stage complete") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("dangling edges") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Analyzed 2 graphs")

	out := buf.String()
	if !strings.Contains(out, "Analyzed 2 graphs (") {
		t.Errorf("done() output = %q, want message with elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), custom))
	if got != custom {
		t.Fatal("loggerFromContext() should return the attached logger")
	}
	got.Info("test")
	if buf.Len() == 0 {
		t.Error("attached logger should write to its buffer")
	}
}

func TestVerboseFlag(t *testing.T) {
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.SetOutput(&bytes.Buffer{})
	if err := c.Execute(context.Background(), []string{"layer", writeSample(t), "--root", "A", "-v"}); err != nil {
		t.Fatalf("layer -v error = %v", err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
	if !strings.Contains(logs.String(), "stage complete") {
		t.Errorf("debug logs missing stage events:\n%s", logs.String())
	}
}
