// Package logger provides the process-wide zerolog logger used by the
// demo commands and the verdict reporter.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var log zerolog.Logger

func configure() {
	const timeFormat = "2006-01-02T15:04:05.000Z07:00"
	zerolog.TimeFieldFormat = timeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
	}

	log = zerolog.New(output).With().Timestamp().Logger()
}

// Get returns the shared console logger, configuring it on first use.
func Get() *zerolog.Logger {
	once.Do(configure)
	return &log
}

// GetWithLevel returns the shared logger after setting the global
// level. The level takes effect only on the first call; later calls
// behave like Get.
func GetWithLevel(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure()
		zerolog.SetGlobalLevel(level)
	})
	return &log
}
