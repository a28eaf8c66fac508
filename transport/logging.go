// SPDX-License-Identifier: MIT

package transport

import (
	"io"

	"github.com/sirupsen/logrus"
)

// loggerOf returns opts.Logger, or a logger that drops everything.
func loggerOf(opts Options) logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}

	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}
