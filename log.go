package chargerui

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// printlnLogger is a bare-bones logger that outputs to whatever println
// is hooked up to (semihosting UART on microcontrollers, stderr on
// hosts). It has no concept of levels and will output everything.
type printlnLogger struct{}

func (printlnLogger) Debug(msg string) {
	println(msg)
}

func (printlnLogger) Debugf(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

func (printlnLogger) Info(msg string) {
	println(msg)
}

func (printlnLogger) Infof(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}
