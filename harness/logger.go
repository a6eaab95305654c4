package harness

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal interface the executor writes its exchange trace to.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped line of a captured exchange trace.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is a captured trace in the order it was written.
type CapturedOutput []CapturedMessage

// CapturingLogger accumulates messages in memory so that a case's exchange
// trace can be shown after the case finishes, and only if wanted. The zero
// value is ready to use.
type CapturingLogger struct {
	lock     sync.Mutex
	messages CapturedOutput
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.messages = append(l.messages, CapturedMessage{
		Time:    time.Now(),
		Message: fmt.Sprintf(message, args...),
	})
}

// Output returns a copy of everything captured so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.messages...)
}

// Dump writes the captured trace to dest, one line per message, each
// timestamped and indented by prefix.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, m.Time.Format(timestampFormat), m.Message)
	}
}
