package bench

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Horki/treers"
)

// Structures lists the runnable structure names.
var Structures = []string{"bst", "btree", "rbtree"}

// NewTree returns an empty tree for a structure name.
func NewTree(structure string) (treers.Tree[string, []byte], error) {
	switch structure {
	case "bst":
		return treers.NewBST[string, []byte](), nil
	case "btree":
		return treers.NewBTree[string, []byte](), nil
	case "rbtree":
		return treers.NewRBTree[string, []byte](), nil
	default:
		return nil, fmt.Errorf("unknown structure %q", structure)
	}
}

// Runner builds one tree from a generated workload, logging progress
// and verifying the ordered-map contract on the result. The metric
// fields are optional; nil metrics are skipped.
type Runner struct {
	Log       zerolog.Logger
	Structure string
	Generator KeysetGenerator

	// ProgressInterval is the insert count between progress log
	// lines; 0 means every 100 000 inserts.
	ProgressInterval int

	MetricInsertCount prometheus.Counter
	MetricTreeSize    prometheus.Gauge
	MetricTreeHeight  prometheus.Gauge
}

// Run inserts the whole workload and returns the run report.
func (r *Runner) Run() (*Report, error) {
	tree, err := NewTree(r.Structure)
	if err != nil {
		return nil, err
	}
	itr, err := r.Generator.Iterator()
	if err != nil {
		return nil, fmt.Errorf("error building workload iterator: %w", err)
	}

	interval := r.ProgressInterval
	if interval <= 0 {
		interval = 100_000
	}

	cnt := 0
	start := time.Now()
	since := start
	for ; itr.Valid(); err = itr.Next() {
		if err != nil {
			return nil, err
		}
		tree.Put(itr.Key, itr.Value)
		cnt++
		if r.MetricInsertCount != nil {
			r.MetricInsertCount.Inc()
		}
		if cnt%interval == 0 {
			r.Log.Info().Msgf("inserted %s keys in %s; %s keys/s",
				humanize.Comma(int64(cnt)),
				time.Since(since),
				humanize.Comma(int64(float64(interval)/time.Since(since).Seconds())))
			since = time.Now()
		}
	}
	duration := time.Since(start)

	if err := verify(tree, cnt); err != nil {
		return nil, fmt.Errorf("%s failed post-run verification: %w", r.Structure, err)
	}

	height, _ := tree.Height()
	if r.MetricTreeSize != nil {
		r.MetricTreeSize.Set(float64(tree.Size()))
	}
	if r.MetricTreeHeight != nil {
		r.MetricTreeHeight.Set(float64(height))
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	r.Log.Info().
		Str("structure", r.Structure).
		Int("size", tree.Size()).
		Int("height", height).
		Dur("duration", duration).
		Str("mem_alloc", humanize.Bytes(memStats.Alloc)).
		Str("mem_sys", humanize.Bytes(memStats.Sys)).
		Msg("workload applied")

	return &Report{
		Structure:  r.Structure,
		Pattern:    string(r.Generator.Pattern),
		Seed:       r.Generator.Seed,
		Inserts:    cnt,
		Size:       tree.Size(),
		Height:     height,
		DurationMS: duration.Milliseconds(),
		OpsPerSec:  float64(cnt) / duration.Seconds(),
		MemAlloc:   memStats.Alloc,
		MemSys:     memStats.Sys,
		NumGC:      memStats.NumGC,
	}, nil
}

// verify re-checks the ordered-map contract on the built tree: size
// matches the distinct keys inserted, in-order traversal is strictly
// sorted and min/max agree with the traversal boundaries.
func verify(tree treers.Tree[string, []byte], inserted int) error {
	if tree.Size() != inserted {
		return fmt.Errorf("size mismatch: tree has %d entries, inserted %d distinct keys", tree.Size(), inserted)
	}
	pairs := treers.Traverse[string, []byte](tree, treers.InOrder)
	if len(pairs) != inserted {
		return fmt.Errorf("in-order traversal returned %d pairs, want %d", len(pairs), inserted)
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i-1].Key >= pairs[i].Key {
			return fmt.Errorf("in-order keys out of order at index %d: %q >= %q", i, pairs[i-1].Key, pairs[i].Key)
		}
	}
	if inserted == 0 {
		return nil
	}
	minKey, ok := tree.Min()
	if !ok || minKey != pairs[0].Key {
		return fmt.Errorf("min %q does not match first in-order key %q", minKey, pairs[0].Key)
	}
	maxKey, ok := tree.Max()
	if !ok || maxKey != pairs[len(pairs)-1].Key {
		return fmt.Errorf("max %q does not match last in-order key %q", maxKey, pairs[len(pairs)-1].Key)
	}
	return nil
}
