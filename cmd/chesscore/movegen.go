package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/config"
)

func movegen(w io.Writer, cfg *config.Config) error {
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return err
	}
	g := board.NewMoveGenerator(board.WithPromotionMode(cfg.PromotionMode))

	fmt.Fprintln(w, "to move:", b.Turn())
	fmt.Fprintln(w, render(b))
	fmt.Fprintln(w, b.State(g))
	dumpMoves(w, b, g)
	return nil
}

func render(b *board.Board) string {
	if color.NoColor {
		return b.Dump()
	}
	return b.Draw()
}

func dumpMoves(w io.Writer, b *board.Board, g *board.MoveGenerator) {
	mvs := g.Moves(b, false)
	legal := lo.Filter(mvs, func(mv board.Move, _ int) bool {
		return b.IsLegal(mv)
	})
	width := len(strconv.Itoa(len(mvs)))
	for i, mv := range mvs {
		mark := " "
		if lo.Contains(legal, mv) {
			mark = "*"
		}
		piece := b.PieceAt(mv.From())
		fmt.Fprintf(w, "option %*d: %s [%s] %s %s => %s (flag=%s)\n",
			width, i+1, mark, mv.UCI(), piece, mv.From(), mv.To(), mv.Flag())
	}
	fmt.Fprintf(w, "%d pseudo-legal, %d legal: %s\n", len(mvs), len(legal),
		strings.Join(lo.Map(legal, func(mv board.Move, _ int) string { return mv.UCI() }), " "))
}
