package logger

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"strings"
	"time"
)

var (
	log zerolog.Logger

	DurationAsString  = true
	DurationFieldName = "dur"
	ErrorsFieldName   = "errors"

	EmptyMessage = ""
)

func Log() *zerolog.Logger {
	return &log
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Default output to console
	SetConsoleWriter()
}

func SetWriter(w io.Writer) {
	log = zerolog.New(w)
}

// SetLevel applies a textual level such as "debug" or "warn" to the
// global filter. Unknown levels are reported back to the caller.
func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "trace", "verbose", "verb":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warning", "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "quiet", "silent":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		return fmt.Errorf("unknown log level '%s'", level)
	}
	return nil
}

func doLog(event *zerolog.Event, args []interface{}) {
	event.Timestamp()

	if len(args) == 0 {
		event.Msg(EmptyMessage)
		return
	}

	switch t := args[0].(type) {
	case error:
		event.Err(t)
		args = args[1:]
	}

	for i := 0; i < len(args); i += 2 {
		key := args[i]
		if key == nil {
			i -= 1
			continue
		}

		switch k := key.(type) {
		case string:
			// Treat it like a format template?
			if strings.Contains(k, "%") {
				event.Msgf(k, args[i+1:]...)
				return
			}

			valueIndex := i + 1
			// Treat key as message?
			if valueIndex == len(args) {
				event.Msg(k)
				return
			}

			value := args[valueIndex]
			switch v := value.(type) {
			case string:
				event.Str(k, v)
			case int:
				event.Int(k, v)
			case int64:
				event.Int64(k, v)
			case uint64:
				event.Uint64(k, v)
			case float64:
				event.Float64(k, v)
			case bool:
				event.Bool(k, v)
			case error:
				event.AnErr(k, v)
			case time.Duration:
				if DurationAsString {
					event.Str(k, v.String())
				} else {
					event.Dur(k, v)
				}
			default:
				event.Interface(k, value)
			}
			continue

		case error:
			event.Err(k)
		case []error:
			event.Errs(ErrorsFieldName, k)
		case time.Duration:
			if DurationAsString {
				event.Str(DurationFieldName, k.String())
			} else {
				event.Dur(DurationFieldName, k)
			}
		}
		i -= 1
	}

	event.Msg(EmptyMessage)
}

// Trace logs a message at level Trace on the standard logger.
func Trace(args ...interface{}) {
	doLog(log.Trace(), args)
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	doLog(log.Debug(), args)
}

// Info logs a message at level Info on the standard logger.
func Info(args ...interface{}) {
	doLog(log.Info(), args)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(args ...interface{}) {
	doLog(log.Warn(), args)
}

// Error logs a message at level Error on the standard logger.
func Error(err error, args ...interface{}) {
	doLog(log.Error().Err(err), args)
}

// Fatal logs a message at level Fatal on the standard logger then the process will exit with status set to 1.
func Fatal(err error, args ...interface{}) {
	doLog(log.Fatal().Err(err), args)
}
