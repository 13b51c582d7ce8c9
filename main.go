package main

import (
	"io"
	"log/slog"
	"os"

	"simpleimage/solid"
	"simpleimage/swatch"

	"github.com/alecthomas/kong"
)

type cli struct {
	LogLevel  string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log output format" enum:"text,json" default:"text"`

	Fill   solid.CLICmd  `cmd:"" help:"Create an image filled with a color or a gradient"`
	Swatch swatch.CLICmd `cmd:"" help:"Render one solid PNG per color"`
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("simpleimage"),
		kong.Description("Build simple RGBA images and write them as PNG."),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, c.LogLevel, c.LogFormat)
	slog.SetDefault(logger)

	if err := kctx.Run(logger); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
