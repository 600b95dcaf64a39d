package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func BootstrapLogger() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{})
	Log.SetLevel(logrus.InfoLevel)
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			Log.SetLevel(level)
		}
	}
}

func init() {
	BootstrapLogger()
}
