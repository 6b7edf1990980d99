package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rapidmidiex/notequiz"
	"github.com/rapidmidiex/notequiz/config"
	"github.com/rapidmidiex/notequiz/pitch"
	"github.com/rapidmidiex/notequiz/styles"
)

var (
	cfg       config.Config
	low, high int
)

func init() {
	cfg = config.Load()
	low, high = int(cfg.Range.Low), int(cfg.Range.High)

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a random one")
	flag.IntVar(&low, "low", low, "Lowest key to quiz (39 is middle C)")
	flag.IntVar(&high, "high", high, "Highest key to quiz")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	flag.StringVar(&cfg.Dump, "dump", "", "Print one frame as text or json and exit")
	flag.IntVar(&cfg.Width, "width", 0, "Frame width for -dump")
	flag.IntVar(&cfg.Height, "height", 0, "Frame height for -dump")

	flag.Parse()
}

func main() {
	cfg.Range = pitch.Range{Low: pitch.Key(low), High: pitch.Key(high)}
	if err := cfg.Validate(); err != nil {
		bail(err)
	}

	if cfg.Dump != "" {
		bail(notequiz.Dump(os.Stdout, cfg))
		return
	}
	bail(notequiz.Run(cfg))
}

func bail(err error) {
	if err != nil {
		fmt.Println(styles.RenderError(err.Error()))
		os.Exit(1)
	}
}
