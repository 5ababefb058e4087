package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/brianvoe/gofakeit/v6"
	cli "github.com/urfave/cli/v2"

	"github.com/aglyzov/go-veb/veb"
)

var compareCmd = &cli.Command{
	Name:  "compare",
	Usage: "compare the tree against other ordered sets on sampled keys",
	Flags: append(commonFlags("VEBBENCH_COMPARE"),
		&cli.StringFlag{
			Name:    "distribution",
			Usage:   "key distribution (uniform, exponential, zipfian)",
			Value:   string(uniform),
			EnvVars: []string{"VEBBENCH_COMPARE_DISTRIBUTION"},
		},
		&cli.Float64Flag{
			Name:    "skew",
			Usage:   "skew of the exponential and zipfian distributions",
			Value:   1.0,
			EnvVars: []string{"VEBBENCH_COMPARE_SKEW"},
		},
		&cli.StringSliceFlag{
			Name:    "targets",
			Usage:   "structures to measure (veb, btree, roaring)",
			Value:   cli.NewStringSlice(targetNames...),
			EnvVars: []string{"VEBBENCH_COMPARE_TARGETS"},
		},
	),
	Action: func(cctx *cli.Context) error {
		dist, err := parseDistribution(cctx.String("distribution"))
		if err != nil {
			return err
		}
		cfg := compareConfig{
			Bits:         cctx.Uint("bits"),
			NumInserts:   cctx.Int("num-inserts"),
			Seed:         cctx.Int64("seed"),
			Distribution: dist,
			Skew:         cctx.Float64("skew"),
			Targets:      cctx.StringSlice("targets"),
		}
		return runCompare(slog.Default(), cfg)
	},
}

type compareConfig struct {
	Bits         uint
	NumInserts   int
	Seed         int64
	Distribution distribution
	Skew         float64
	Targets      []string
}

// answer is the result of one successor or predecessor query.
type answer struct {
	Key uint64
	OK  bool
}

type workload struct {
	values       []uint64
	successors   []uint64
	predecessors []uint64
}

// expectation holds the baseline answers for a workload.
type expectation struct {
	sorted       []uint64
	successors   []answer
	predecessors []answer
}

func runCompare(logger *slog.Logger, cfg compareConfig) error {
	if _, err := veb.New(cfg.Bits); err != nil {
		return err
	}
	if cfg.NumInserts <= 0 {
		cfg.NumInserts = 1
	}
	logger = logger.With("bits", cfg.Bits)
	logger.Info("compare benchmark",
		"num_inserts", cfg.NumInserts,
		"distribution", cfg.Distribution,
		"skew", cfg.Skew,
		"seed", cfg.Seed,
	)

	sw := newStopwatch(logger, "random data generation")
	smp := newSampler(gofakeit.New(cfg.Seed), cfg.Distribution, cfg.Skew, cfg.Bits)
	work := workload{
		values:       smp.fill(cfg.NumInserts),
		successors:   smp.fill(cfg.NumInserts),
		predecessors: smp.fill(cfg.NumInserts),
	}
	sw.total()

	// the B-tree baseline produces the expected answers
	exp := measure(logger, "baseline", newBtreeSet(), work)

	for _, name := range cfg.Targets {
		target, err := newTarget(name, cfg.Bits)
		if err != nil {
			return err
		}
		got := measure(logger, name, target, work)
		if err := exp.verify(got); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("answers match the baseline", "target", name)
	}
	return nil
}

// measure times inserts and queries of work against s.
func measure(logger *slog.Logger, name string, s orderedSet, work workload) expectation {
	sw := newStopwatch(logger, name)

	for _, v := range work.values {
		s.Insert(v)
	}
	sw.lap("insert")

	res := expectation{sorted: s.Keys()}

	res.successors = make([]answer, len(work.successors))
	for i, q := range work.successors {
		k, ok := s.Successor(q)
		res.successors[i] = answer{k, ok}
	}
	sw.lap("successor")

	res.predecessors = make([]answer, len(work.predecessors))
	for i, q := range work.predecessors {
		k, ok := s.Predecessor(q)
		res.predecessors[i] = answer{k, ok}
	}
	sw.lap("predecessor")
	sw.total()

	return res
}

func (e expectation) verify(got expectation) error {
	if !slices.IsSorted(got.sorted) {
		return fmt.Errorf("contents are not sorted")
	}
	if !slices.Equal(e.sorted, got.sorted) {
		return fmt.Errorf("contents differ: %d keys, want %d", len(got.sorted), len(e.sorted))
	}
	if i := firstMismatch(e.successors, got.successors); i >= 0 {
		return fmt.Errorf("successor #%d: got %v, want %v", i, got.successors[i], e.successors[i])
	}
	if i := firstMismatch(e.predecessors, got.predecessors); i >= 0 {
		return fmt.Errorf("predecessor #%d: got %v, want %v", i, got.predecessors[i], e.predecessors[i])
	}
	return nil
}

// firstMismatch returns the first index where the answers differ, or -1.
// Both slices come from the same workload and have the same length.
func firstMismatch(want, got []answer) int {
	for i := range want {
		if want[i] != got[i] {
			return i
		}
	}
	return -1
}
