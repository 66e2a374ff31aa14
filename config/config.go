package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
)

const envPrefix = "CHESSCORE"

type Config struct {
	LogLevel      string
	FEN           string
	Depth         int
	Parallel      bool
	PromotionMode board.PromotionMode
	Color         bool
	HashTableSize uint64

	// Args holds the positional arguments left after flag parsing.
	Args []string
}

// Load reads flags from args, falling back to CHESSCORE_* environment
// variables and then to defaults.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("chesscore", pflag.ContinueOnError)
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("fen", board.DefaultStartingPositionFEN, "position to load")
	fs.Int("depth", 4, "perft depth")
	fs.Bool("parallel", false, "split perft root moves across goroutines")
	fs.String("promotions", board.PromotionModeAll.String(), "under-promotions to generate: all, queen or queen-knight")
	fs.Bool("color", true, "colour terminal output")
	fs.Uint64("hash-size", 0, "perft hash table entries, a power of two; 0 disables, bare flag uses the default size")
	fs.Lookup("hash-size").NoOptDefVal = strconv.Itoa(bench.DefaultHashTableSize)
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	promotionMode, err := board.ParsePromotionMode(v.GetString("promotions"))
	if err != nil {
		return err
	}
	depth := v.GetInt("depth")
	if depth < 0 {
		return fmt.Errorf("invalid depth %d", depth)
	}

	c.LogLevel = v.GetString("log-level")
	c.FEN = v.GetString("fen")
	c.Depth = depth
	c.Parallel = v.GetBool("parallel")
	c.PromotionMode = promotionMode
	c.Color = v.GetBool("color")
	c.HashTableSize = v.GetUint64("hash-size")
	c.Args = fs.Args()
	return nil
}
