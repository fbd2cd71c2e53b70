package logging

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Fields carries structured context for a log line.
type Fields map[string]interface{}

type level string

const (
	levelInfo  level = "info"
	levelWarn  level = "warn"
	levelError level = "error"
	levelFatal level = "fatal"
)

func emit(lvl level, msg string, err error, fields Fields) {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["level"] = string(lvl)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["msg"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}
	b, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", lvl, msg, fields)
		return
	}
	log.Println(string(b))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit(levelInfo, msg, nil, fields)
}

// Warn logs a recoverable problem with optional fields.
func Warn(msg string, err error, fields Fields) {
	emit(levelWarn, msg, err, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	emit(levelError, msg, err, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	emit(levelFatal, msg, err, fields)
	os.Exit(1)
}
