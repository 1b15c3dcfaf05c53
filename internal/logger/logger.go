package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a new well configured logger.
// When filename is not empty, entries are also written to a rotated log file.
func New(level, filename string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stdout, level, filename)
}

// NewWithOutput is like New but writes to the given output instead of stdout.
func NewWithOutput(w io.Writer, level, filename string) (*logrus.Logger, error) {
	formatter := new(logFormatter)

	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(formatter)

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse log level")
		}
		log.SetLevel(lvl)
	}

	if filename != "" {
		log.Hooks.Add(&fileHook{
			rotate: &lumberjack.Logger{
				Filename:   filename,
				MaxSize:    20, // megabytes
				MaxBackups: 2,
				MaxAge:     10, //days
			},
			formatter: formatter,
		})
	}

	return log, nil
}

// Discard returns a logger that writes nowhere.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

////////////////////
//                //
// File hook      //
//                //
////////////////////

type fileHook struct {
	sync.Mutex
	rotate    *lumberjack.Logger
	formatter logrus.Formatter
}

// Fire writes the formatted entry to the rotated file.
func (hook *fileHook) Fire(entry *logrus.Entry) error {
	hook.Lock()
	defer hook.Unlock()

	msg, err := hook.formatter.Format(entry)
	if err != nil {
		return errors.Wrap(err, "failed to generate string for entry")
	}

	_, err = hook.rotate.Write(msg)
	return err
}

// Levels returns configured log levels.
func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

////////////////////
//                //
// Log formatter  //
//                //
////////////////////

type logFormatter struct{}

// Format implements Logrus formatter.
func (f *logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := ""
	if len(entry.Data) > 0 {
		fs := make([]string, 0, len(entry.Data))
		for k, v := range entry.Data {
			fs = append(fs, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(fs)
		fields = fmt.Sprintf(" (%s)", strings.Join(fs, ", "))
	}

	t := entry.Time
	if t.IsZero() {
		t = time.Now()
	}

	data := fmt.Sprintf("[%s] %+5s: %s%s\n",
		t.Format(time.RFC3339),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		fields,
	)
	return []byte(data), nil
}
