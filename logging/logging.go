// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"teg/meta"
)

// Init sets the global level and output. The console gets human readable
// lines unless cfg.JSON is set; a named file always receives JSON and is
// rotated by lumberjack.
func Init(cfg meta.LogConfig) error {
	logger, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}

// New builds a logger writing to console and, when configured, to the log
// file. It also sets the global level.
func New(cfg meta.LogConfig, console io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.JSON {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly}
	}

	out := console
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		out = zerolog.MultiLevelWriter(console, file)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
