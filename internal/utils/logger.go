package utils

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logMu  sync.RWMutex
	logger = logrus.New()
)

// NewLogger builds the process logger. When file is set, output goes to a
// size-rotated file as well as stderr; the returned closer flushes it.
func NewLogger(level, file string) (*logrus.Logger, io.Closer, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, nil, err
	}
	l.SetLevel(lvl)

	if strings.TrimSpace(file) == "" {
		l.SetOutput(os.Stderr)
		return l, io.NopCloser(nil), nil
	}

	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		LocalTime:  true,
	}
	l.SetOutput(io.MultiWriter(os.Stderr, rotated))
	return l, rotated, nil
}

// SetLogger replaces the logger used by LogEvent and the HTTP middleware.
func SetLogger(l *logrus.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

func Logger() *logrus.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// LogEvent writes a standardized entry with module/action/request_id fields.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Logger().WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
