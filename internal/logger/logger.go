// Package logger configures the shared go-logging backend for the process.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
)

// Init installs a stdout backend at the requested level. Level names
// follow go-logging ("DEBUG", "INFO", "WARNING", ...).
func Init(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	formattedBackend := logging.NewBackendFormatter(baseBackend, format)
	leveledBackend := logging.AddModuleLevel(formattedBackend)

	level, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
	return nil
}
