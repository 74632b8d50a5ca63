package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

// LogFileOptions enables a rotating log file next to the console output.
type LogFileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	file        io.Closer
	RawBodyLog  bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return NewLoggerWithFile(level, rawBodyLog, nil)
}

// NewLoggerWithFile is NewLogger plus a copy of every line in a lumberjack
// rotated file when opts names a path.
func NewLoggerWithFile(level string, rawBodyLog bool, opts *LogFileOptions) *Logger {
	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	var file io.Closer

	if opts != nil && opts.Path != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB, // megabytes
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays, // days
			Compress:   opts.Compress,
		}
		stdout = io.MultiWriter(os.Stdout, rotating)
		stderr = io.MultiWriter(os.Stderr, rotating)
		file = rotating
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile

	return &Logger{
		level:       parseLogLevel(level),
		infoLogger:  log.New(stdout, "INFO: ", flags),
		errorLogger: log.New(stderr, "ERROR: ", flags),
		debugLogger: log.New(stdout, "DEBUG: ", flags),
		file:        file,
		RawBodyLog:  rawBodyLog,
	}
}

func NewDiscardLogger() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Output(2, withReqID(reqID, format, v...))
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.errorLogger.Output(2, withReqID(reqID, format, v...))
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Output(2, withReqID(reqID, format, v...))
}

// Close releases the rotating log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func withReqID(reqID *string, format string, v ...any) string {
	msg := fmt.Sprintf(format, v...)
	if reqID == nil || *reqID == "" {
		return msg
	}
	return "[" + *reqID + "] " + msg
}
