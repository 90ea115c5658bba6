package logging

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TimestampFormat = "01/02/2006 03:04:05 PM"

	maxSizeMB  = 5
	maxBackups = 3
)

// New returns a logger writing to a size-rotated file at path. The returned
// closer releases the file.
func New(path string, level string) (*log.Logger, io.Closer, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	return NewWithWriter(rotator, parsed), rotator, nil
}

func NewWithWriter(out io.Writer, level log.Level) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})
	return logger
}

// ParseLevel defaults to debug when level is empty.
func ParseLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return log.DebugLevel, nil
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}
	return parsed, nil
}
