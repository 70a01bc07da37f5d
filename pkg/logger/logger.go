// Package logger wraps logrus with the service-wide format and rotating
// file output.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

// LogFormatter renders entries as "timestamp [LEVEL] message".
type LogFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

// Format formats one entry in the custom format.
func (f *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	level := f.LevelDesc[entry.Level]
	msg := fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)
	return []byte(msg), nil
}

// Init configures level, format and output. With LOG_DIRECTORY set, output
// goes to hourly-rotated files kept for LOG_FILE_MAX_AGE days; otherwise
// stdout.
func Init() {
	log.SetFormatter(&LogFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		LevelDesc:       []string{"PANIC", "FATAL", "ERROR", "WARN", "INFO", "DEBUG", "TRACE"},
	})

	if os.Getenv("LOG_LEVEL") == "DEBUG" {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	logDirectory := os.Getenv("LOG_DIRECTORY")
	if logDirectory == "" {
		log.SetOutput(os.Stdout)
		return
	}

	maxAgeDays, err := strconv.Atoi(os.Getenv("LOG_FILE_MAX_AGE"))
	if err != nil || maxAgeDays <= 0 {
		maxAgeDays = 2
	}

	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		fmt.Println("Error creating log folder:", err)
		os.Exit(1)
	}

	rl, err := rotatelogs.New(
		filepath.Join(logDirectory, "%Y-%m-%d-%H.log"),
		rotatelogs.WithLinkName(filepath.Join(logDirectory, "current.log")),
		rotatelogs.WithRotationTime(time.Hour),
		rotatelogs.WithMaxAge(time.Duration(maxAgeDays)*24*time.Hour),
	)
	if err != nil {
		fmt.Println("Error initializing log rotation:", err)
		os.Exit(1)
	}
	log.SetOutput(rl)
}

// Info logs informational messages
func Info(message string) {
	log.Info(message)
}

// Infof logs formatted informational message
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warn logs warning messages
func Warn(message string) {
	log.Warn(message)
}

// Error logs error messages
func Error(message string) {
	log.Error(message)
}

// Errorf logs formatted error message
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs debug messages
func Debug(message string) {
	log.Debug(message)
}

// Debugf logs formatted debug message
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Fatal logs fatal error and exits
func Fatal(message string) {
	log.Fatal(message)
}
