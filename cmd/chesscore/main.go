package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daystram/chesscore/config"
)

const (
	exitOK = iota
	exitErr
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := realMain(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("chesscore failed")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(ctx context.Context, args []string, w io.Writer) error {
	var cfg config.Config
	if err := cfg.Load(args); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	color.NoColor = !cfg.Color

	mode := "movegen"
	var rest []string
	if len(cfg.Args) > 0 {
		mode, rest = cfg.Args[0], cfg.Args[1:]
	}
	log.Info().Str("mode", mode).Str("fen", cfg.FEN).Msg("starting")

	switch mode {
	case "movegen":
		return movegen(w, &cfg)
	case "perft":
		return perft(ctx, w, &cfg, false)
	case "divide":
		return perft(ctx, w, &cfg, true)
	case "fen":
		return fen(w, &cfg)
	case "play":
		return play(w, &cfg, rest)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
