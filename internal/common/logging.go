package common

import (
	"io"
	"log"
	"os"
)

var (
	logger = log.New(os.Stderr, "[barcoded] ", log.LstdFlags|log.Lmicroseconds)
)

func Logf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

// SetOutput redirects the package logger, used by the daemon to multiplex
// stdout and the rotating log file.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}
