package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// CrashFunc receives a recovered panic value and the stack of the panicking goroutine
type CrashFunc func(r any, stack []byte)

var crashHandler atomic.Pointer[CrashFunc]

// SetCrashHandler installs fn as the sink for panics recovered by Go
// Passing nil restores the stderr report
func SetCrashHandler(fn CrashFunc) {
	if fn == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&fn)
}

// HandleCrash reports a recovered panic through the installed handler
// The process is not terminated; the host decides whether a crash is fatal
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r, stack)
		return
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword for long-lived engine goroutines
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
