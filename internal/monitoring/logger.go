package monitoring

import (
	"log"
	"os"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// Exit terminates the process with the given status. Fatalf calls it after
// logging; tests swap it through SetExit.
var Exit func(code int) = os.Exit

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetExit replaces the termination hook and returns the previous one.
// Passing nil restores os.Exit.
func SetExit(f func(code int)) func(code int) {
	prev := Exit
	if f == nil {
		f = os.Exit
	}
	Exit = f
	return prev
}

// Fatalf logs a message and terminates with code. The message is written
// even when the logger is muted so the reason for the exit is never lost.
func Fatalf(code int, format string, v ...interface{}) {
	log.Printf("fatal (status %d): "+format, append([]interface{}{code}, v...)...)
	Exit(code)
}
