// SPDX-License-Identifier: MIT

// Package logging builds the logrus logger used by the sgl1d command and
// the pipeline. Core packages never log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sgl1d/fault"
)

// ErrInvalidFormat is returned for a log format other than "text" or "json".
var ErrInvalidFormat = errors.New("logging: unknown format")

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const timestampFormat = "2006-01-02 15:04:05"

// New returns a logger writing to w at level ("debug", "info", "warn",
// "error") in the given format.
func New(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fault.Configuration("log_level", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case FormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	default:
		return nil, fault.Configuration("log_format", format, fmt.Errorf("%w: %q", ErrInvalidFormat, format))
	}

	return logger, nil
}

// Discard returns a logger that drops everything; handy for tests and
// library callers that do not want output.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)

	return logger
}
