package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/config"
)

func perft(ctx context.Context, w io.Writer, cfg *config.Config, divide bool) error {
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			fmt.Fprintln(w, line)
		}
	}()

	s, err := bench.Run(ctx, bench.Config{
		FEN:           cfg.FEN,
		Depth:         cfg.Depth,
		Parallel:      cfg.Parallel,
		Divide:        divide,
		PromotionMode: cfg.PromotionMode,
		HashTableSize: cfg.HashTableSize,
	}, out)
	close(out)
	<-done
	if err != nil {
		return err
	}
	log.Info().Uint64("nodes", s.Nodes).Int("depth", cfg.Depth).Msg("perft finished")
	return nil
}
