package logging

import (
	"time"

	"github.com/sirupsen/logrus"
)

// OpLog collects fields and timings for one tracker operation and emits
// them as a single structured entry.
type OpLog struct {
	timings map[string]int64
	fields  map[string]interface{}
	logger  *logrus.Logger
}

func NewOpLog(logger *logrus.Logger) *OpLog {
	return &OpLog{
		timings: make(map[string]int64),
		fields:  make(map[string]interface{}),
		logger:  logger,
	}
}

// AddTiming starts a timer for entryName and returns the function that
// stops it and records the elapsed milliseconds.
func (l *OpLog) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		l.timings[entryName] = time.Since(startTime).Milliseconds()
	}
}

func (l *OpLog) AddField(key string, value interface{}) {
	l.fields[key] = value
}

func (l *OpLog) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	for key, value := range l.fields {
		entry = entry.WithField(key, value)
	}

	for key, value := range l.timings {
		entry = entry.WithField(key, value)
	}

	return entry
}
