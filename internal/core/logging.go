package core

import (
	"io"
	"log/slog"
)

// SetupLogging installs a text slog handler at the configured level as the default logger
func SetupLogging(w io.Writer, config *GeneratorConfig) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: config.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
