package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/config"
)

// play applies UCI moves to the configured position. Moves may be given as
// separate arguments or as one quoted list.
func play(w io.Writer, cfg *config.Config, args []string) error {
	words, err := shellquote.Split(strings.Join(args, " "))
	if err != nil {
		return err
	}
	moves := lo.FlatMap(words, func(word string, _ int) []string {
		return strings.Fields(word)
	})
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return err
	}
	g := board.NewMoveGenerator(board.WithPromotionMode(cfg.PromotionMode))

	for i, text := range moves {
		mv, err := board.ParseUCI(text, b)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if !lo.Contains(g.Moves(b, false), mv) || !b.IsLegal(mv) {
			return fmt.Errorf("move %d: %w: %s is not legal in %s", i+1, board.ErrInvalidMove, text, b.FEN())
		}
		b.MakeMove(mv)
		log.Debug().Str("move", mv.UCI()).Str("fen", b.FEN()).Msg("applied")
	}

	fmt.Fprintln(w, render(b))
	fmt.Fprintln(w, b.FEN())
	fmt.Fprintln(w, b.State(g))
	return nil
}
