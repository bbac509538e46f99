package av1

import (
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the structured logging interface every component receives.
// github.com/ausocean/utils/logging.Logger already satisfies this; it is
// restated here as the narrower surface this package actually calls.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

const (
	defaultLogFile    = "av1dec.log"
	defaultLogMaxSize = 10 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

// defaultLogger builds the rotating-file logger a Decoder falls back to
// when its Settings don't supply one, following the same
// lumberjack-backed construction the teacher's command-line tool uses for
// its own file logger.
func defaultLogger() Logger {
	sink := &lumberjack.Logger{
		Filename:   defaultLogFile,
		MaxSize:    defaultLogMaxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAge,
	}
	return logging.New(logging.Info, io.MultiWriter(sink, os.Stderr), false)
}

// sessionID returns a fresh correlation ID, used as a Decoder's session ID
// (included in its frame-failure log line) and as a Picture's FrameID.
func sessionID() string {
	return uuid.New().String()
}
