package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Horki/treers/bench"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("bench", "treers").Logger()

func main() {
	root := &cobra.Command{
		Use:   "treebench",
		Short: "Insertion benchmarks for the treers map structures.",
	}
	root.AddCommand(runCommand())

	if err := root.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func runCommand() *cobra.Command {
	var (
		structure  string
		pattern    string
		reportFile string
		count      int
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "build a tree from a generated workload and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := bench.ParsePattern(pattern)
			if err != nil {
				return err
			}
			gen := bench.DefaultGenerator(seed, count)
			gen.Pattern = p

			labels := map[string]string{
				"structure": structure,
				"pattern":   pattern,
			}
			runner := &bench.Runner{
				Log:       log,
				Structure: structure,
				Generator: gen,
				MetricInsertCount: promauto.NewCounter(prometheus.CounterOpts{
					Name:        "treers_insert_count",
					Help:        "number of keys inserted into the tree",
					ConstLabels: labels,
				}),
				MetricTreeSize: promauto.NewGauge(prometheus.GaugeOpts{
					Name:        "treers_tree_size",
					ConstLabels: labels,
				}),
				MetricTreeHeight: promauto.NewGauge(prometheus.GaugeOpts{
					Name:        "treers_tree_height",
					ConstLabels: labels,
				}),
			}

			report, err := runner.Run()
			if err != nil {
				return err
			}
			if reportFile != "" {
				if err := bench.WriteReport(reportFile, *report); err != nil {
					return err
				}
				log.Info().Str("file", reportFile).Msg("report written")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&structure, "structure", "rbtree", "structure to benchmark (bst|btree|rbtree)")
	cmd.Flags().StringVar(&pattern, "pattern", "random", "workload pattern (ascending|descending|random)")
	cmd.Flags().IntVar(&count, "count", 1_000_000, "number of keys to insert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the workload generator")
	cmd.Flags().StringVar(&reportFile, "report-file", "", "write the run report to this file as JSON")

	return cmd
}
