package main

import (
	"fmt"
	"io"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/config"
)

func fen(w io.Writer, cfg *config.Config) error {
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, b.FEN())
	fmt.Fprintln(w, b.DebugString())
	return nil
}
