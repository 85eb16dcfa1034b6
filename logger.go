// Copyright (c) 2012-present The sqlcraft authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package sqlcraft

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EnvEnableDebug, when set to a non-empty value, lowers the log level of the
// default logging collector to LogLevelDebug, making every rendered query
// visible at runtime.
//
// Example:
//
//	SQLCRAFT_DEBUG=1 go test
//
//	SQLCRAFT_DEBUG=1 ./go-program
const EnvEnableDebug = `SQLCRAFT_DEBUG`

// LogLevel represents a verbosity level for the logging collector.
type LogLevel int8

// Log levels
const (
	LogLevelTrace LogLevel = -1

	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
	LogLevelPanic
)

var logLevels = map[LogLevel]string{
	LogLevelTrace: "TRACE",
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARNING",
	LogLevelError: "ERROR",
	LogLevelFatal: "FATAL",
	LogLevelPanic: "PANIC",
}

func (ll LogLevel) String() string {
	return logLevels[ll]
}

const defaultLogLevel = LogLevelWarn

// Logger represents a logging backend the collector reports to. Both
// *logrus.Logger and zap's *SugaredLogger satisfy it.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var reInvisibleChars = regexp.MustCompile(`[\s\r\n\t]+`)

// QueryStatus represents a rendered query report sent to the logging
// collector.
type QueryStatus struct {
	Template string
	Query    string

	Err error

	Start time.Time
	End   time.Time
}

// String returns a formatted log message.
func (q *QueryStatus) String() string {
	s := make([]string, 0, 4)

	if q.Template != "" {
		s = append(s, fmt.Sprintf(`N: %s`, q.Template))
	}

	if query := q.Query; query != "" {
		query = reInvisibleChars.ReplaceAllString(query, ` `)
		query = strings.TrimSpace(query)
		s = append(s, fmt.Sprintf(`Q: %s`, query))
	}

	if q.Err != nil {
		s = append(s, fmt.Sprintf(`E: %q`, q.Err))
	}

	s = append(s, fmt.Sprintf(`T: %0.5fs`, float64(q.End.UnixNano()-q.Start.UnixNano())/float64(1e9)))

	return strings.Join(s, "\n")
}

// LoggingCollector provides different methods for collecting and classifying
// log messages.
type LoggingCollector struct {
	mu     sync.RWMutex
	logger Logger
	level  LogLevel
}

// SetLogger sets the logging backend messages are dispatched to.
func (c *LoggingCollector) SetLogger(logger Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger = logger
}

// Logger returns the current logging backend.
func (c *LoggingCollector) Logger() Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.logger
}

// SetLevel sets the minimum log level the collector reports.
func (c *LoggingCollector) SetLevel(level LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.level = level
}

// Level returns the minimum log level the collector reports.
func (c *LoggingCollector) Level() LogLevel {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.level
}

// Log dispatches a query status report to the configured backend, as long as
// the collector's level permits it. Reports carrying an error are dispatched
// at error level, everything else at debug level.
func (c *LoggingCollector) Log(q *QueryStatus) {
	if q == nil {
		return
	}

	if q.Err != nil {
		if c.Level() <= LogLevelError {
			c.Logger().Errorf("%s", q)
		}
		return
	}

	if c.Level() <= LogLevelDebug {
		c.Logger().Debugf("%s", q)
	}
}

var defaultLoggingCollector = &LoggingCollector{
	logger: logrus.New(),
	level:  defaultLogLevel,
}

// LC returns the logging collector.
func LC() *LoggingCollector {
	return defaultLoggingCollector
}

func init() {
	if os.Getenv(EnvEnableDebug) != "" {
		LC().SetLevel(LogLevelDebug)

		if logger, ok := LC().Logger().(*logrus.Logger); ok {
			logger.SetLevel(logrus.DebugLevel)
		}
	}
}
