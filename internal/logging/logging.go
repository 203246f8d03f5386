// Package logging configures logrus for the miner CLI. Unlike the
// server this was adapted from, there is no Stackdriver Error Reporting
// consumer downstream, so the structured formatter carries the entry's
// own fields plus message, severity and timestamp, rather than the full
// serviceContext/reportLocation shape.
package logging

import (
	"bytes"
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// jsonFormatter renders each entry as a single-line JSON object.
type jsonFormatter struct{}

func (jsonFormatter) Format(e *log.Entry) ([]byte, error) {
	msg := e.Data
	msg["message"] = e.Message
	msg["timestamp"] = e.Time
	msg["severity"] = severity(e.Level)

	if errVal, ok := msg[log.ErrorKey]; ok {
		if err, isError := errVal.(error); isError {
			msg[log.ErrorKey] = err.Error()
		} else {
			delete(msg, log.ErrorKey)
		}
	}

	b := new(bytes.Buffer)
	err := json.NewEncoder(b).Encode(msg)
	return b.Bytes(), err
}

func severity(l log.Level) string {
	switch l {
	case log.TraceLevel, log.DebugLevel:
		return "DEBUG"
	case log.InfoLevel:
		return "INFO"
	case log.WarnLevel:
		return "WARNING"
	case log.ErrorLevel:
		return "ERROR"
	case log.FatalLevel:
		return "CRITICAL"
	case log.PanicLevel:
		return "EMERGENCY"
	default:
		return "DEFAULT"
	}
}

// Setup configures logrus's global logger. When structured is true it
// installs jsonFormatter (for piping into a log aggregator); otherwise
// it keeps logrus's human-readable text formatter, which is friendlier
// for a CLI run at a terminal.
func Setup(structured bool, level log.Level) {
	log.SetLevel(level)
	if structured {
		log.SetFormatter(jsonFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)
}
