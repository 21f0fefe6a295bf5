// Package logging はアプリ共通の logrus ロガーを作る。
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New はJSON形式のロガーを返す。レベルが読めなければ info。
func New(level string) *logrus.Logger {
	return NewWithOutput(level, os.Stdout)
}

func NewWithOutput(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		defer logger.Warnf("invalid LOG_LEVEL %q, using info", level)
	}
	logger.SetLevel(lvl)
	return logger
}
