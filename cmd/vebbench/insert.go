package main

import (
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"
	cli "github.com/urfave/cli/v2"

	"github.com/aglyzov/go-veb/veb"
)

var insertCmd = &cli.Command{
	Name:  "insert",
	Usage: "time bulk inserts of uniform keys into fresh trees",
	Flags: append(commonFlags("VEBBENCH_INSERT"),
		&cli.IntFlag{
			Name:    "trials",
			Usage:   "number of fresh trees to fill",
			Value:   5,
			EnvVars: []string{"VEBBENCH_INSERT_TRIALS"},
		},
		&cli.BoolFlag{
			Name:    "reserve",
			Usage:   "reserve tree storage for num-inserts keys before each trial",
			EnvVars: []string{"VEBBENCH_INSERT_RESERVE"},
		},
	),
	Action: func(cctx *cli.Context) error {
		cfg := insertConfig{
			Bits:       cctx.Uint("bits"),
			NumInserts: cctx.Int("num-inserts"),
			Trials:     cctx.Int("trials"),
			Seed:       cctx.Int64("seed"),
			Reserve:    cctx.Bool("reserve"),
		}
		_, err := runInsert(slog.Default(), cfg)
		return err
	},
}

type insertConfig struct {
	Bits       uint
	NumInserts int
	Trials     int
	Seed       int64
	Reserve    bool
}

func (c insertConfig) validate() error {
	if _, err := veb.New(c.Bits); err != nil {
		return err
	}
	if c.NumInserts <= 0 {
		return fmt.Errorf("num-inserts must be positive, got %d", c.NumInserts)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	return nil
}

// insertResult describes one trial.
type insertResult struct {
	Len      int
	Min, Max uint64
	Empty    bool
}

func runInsert(logger *slog.Logger, cfg insertConfig) ([]insertResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger = logger.With("bits", cfg.Bits)
	logger.Info("insert benchmark", "num_inserts", cfg.NumInserts, "trials", cfg.Trials, "seed", cfg.Seed)

	var (
		fake = gofakeit.New(cfg.Seed)
		mask = uint64(1)<<cfg.Bits - 1
		sw   = newStopwatch(logger, "insert")
		keys = make([]uint64, cfg.NumInserts)
	)
	for i := range keys {
		keys[i] = fake.Uint64() & mask
	}
	sw.lap("generate")

	results := make([]insertResult, 0, cfg.Trials)

	for trial := 1; trial <= cfg.Trials; trial++ {
		tree, err := veb.New(cfg.Bits)
		if err != nil {
			return nil, err
		}
		if cfg.Reserve {
			tree.Reserve(cfg.NumInserts)
		}

		tsw := newStopwatch(logger, fmt.Sprintf("trial %d/%d", trial, cfg.Trials))
		for _, k := range keys {
			tree.Insert(k)
		}
		tsw.lap("insert")

		res := insertResult{Len: tree.Len()}
		var okMin, okMax bool
		res.Min, okMin = tree.Min()
		res.Max, okMax = tree.Max()
		res.Empty = !okMin || !okMax

		if res.Empty {
			logger.Warn("tree is empty after insertions", "trial", trial)
		} else {
			logger.Info("trial done", "trial", trial, "len", res.Len, "min", res.Min, "max", res.Max)
		}
		results = append(results, res)
	}
	sw.total()

	return results, nil
}
