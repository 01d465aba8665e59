package logger

import (
	"io"
	"log"
	"os"
)

var (
	Debug   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
	HTTP    *log.Logger
)

func init() {
	SetOutput(os.Stdout, true)
}

// Setup installs the level loggers on stdout. Debug output is discarded
// unless debug is true.
func Setup(debug bool) {
	SetOutput(os.Stdout, debug)
}

// SetOutput points every level at w. Tests use it to capture output.
func SetOutput(w io.Writer, debug bool) {
	debugOut := w
	if !debug {
		debugOut = io.Discard
	}
	HTTP = log.New(w, "[HTTP]\t", log.Ldate|log.Ltime)
	Info = log.New(w, "[INFO]\t", log.Ldate|log.Ltime)
	Warning = log.New(w, "[WARNING]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(debugOut, "[DEBUG]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Error = log.New(w, "[ERROR]\t", log.Ldate|log.Ltime|log.Lshortfile)
}
