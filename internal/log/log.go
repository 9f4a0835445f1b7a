package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
)

var debug = false

func SetDebug(enabled bool) {
	debug = enabled
}

func Debugf(format string, args ...interface{}) {
	if !debug {
		return
	}
	color.Cyan.Printf(withNewline(format), args...)
}

func Logf(format string, args ...interface{}) {
	fmt.Printf(withNewline(format), args...)
}

func Infof(format string, args ...interface{}) {
	color.Green.Printf(withNewline(format), args...)
}

func Warnf(format string, args ...interface{}) {
	color.Yellow.Printf(withNewline(format), args...)
}

func Errorf(format string, args ...interface{}) {
	color.Red.Printf(withNewline(format), args...)
}

func Fatalf(format string, args ...interface{}) {
	color.Red.Printf(withNewline(format), args...)
	os.Exit(1)
}

func withNewline(format string) string {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	return format
}

// Debugger prints library debug output through Debugf.
type Debugger struct{}

func (Debugger) Debug(format string, args ...any) {
	Debugf(format, args...)
}
