// Package bench drives insert workloads into the treers structures
// and reports throughput. It consumes only the public map interface.
package bench

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
)

// Pattern selects the key sequence shape of a generated workload.
type Pattern string

const (
	Ascending  Pattern = "ascending"
	Descending Pattern = "descending"
	Random     Pattern = "random"
)

// ParsePattern maps a command-line name to a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(s) {
	case Ascending, Descending, Random:
		return Pattern(s), nil
	default:
		return "", fmt.Errorf("unknown workload pattern %q", s)
	}
}

// KeysetGenerator describes a deterministic insert workload: the same
// seed always yields the same key-value sequence. Keys are distinct, so
// a run of Count inserts must leave a tree of exactly Count entries.
type KeysetGenerator struct {
	Seed        int64
	Count       int
	Pattern     Pattern
	KeyMean     int
	KeyStdDev   int
	ValueMean   int
	ValueStdDev int
}

// DefaultGenerator returns a random-pattern workload with key and
// value lengths loosely modeled on state-machine store traffic.
func DefaultGenerator(seed int64, count int) KeysetGenerator {
	return KeysetGenerator{
		Seed:        seed,
		Count:       count,
		Pattern:     Random,
		KeyMean:     16,
		KeyStdDev:   3,
		ValueMean:   40,
		ValueStdDev: 12,
	}
}

// Iterator validates the generator and positions it on the first pair.
func (g KeysetGenerator) Iterator() (*KeysetIterator, error) {
	if g.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", g.Count)
	}
	switch g.Pattern {
	case Ascending, Descending:
	case Random:
		if g.KeyMean < 1 || g.ValueMean < 1 {
			return nil, fmt.Errorf("random pattern needs positive key and value means")
		}
	default:
		return nil, fmt.Errorf("unknown workload pattern %q", g.Pattern)
	}

	itr := &KeysetIterator{
		gen:       g,
		rand:      rand.New(rand.NewSource(g.Seed)),
		keyHashes: map[[16]byte]struct{}{},
	}
	err := itr.Next()
	return itr, err
}

// KeysetIterator yields one key-value pair per step. Key and Value hold
// the current pair while Valid reports true.
type KeysetIterator struct {
	Key   string
	Value []byte

	gen       KeysetGenerator
	rand      *rand.Rand
	idx       int
	keyHashes map[[16]byte]struct{}
}

func (itr *KeysetIterator) Valid() bool {
	return itr.Key != ""
}

func (itr *KeysetIterator) Next() error {
	if itr.idx >= itr.gen.Count {
		itr.Key = ""
		itr.Value = nil
		return nil
	}
	itr.idx++

	switch itr.gen.Pattern {
	case Ascending:
		itr.Key = fmt.Sprintf("%09d", itr.idx)
	case Descending:
		itr.Key = fmt.Sprintf("%09d", itr.gen.Count-itr.idx+1)
	case Random:
		for {
			key := itr.genBytes(itr.gen.KeyMean, itr.gen.KeyStdDev)
			h := md5.Sum(key)
			if _, seen := itr.keyHashes[h]; seen {
				continue
			}
			itr.keyHashes[h] = struct{}{}
			itr.Key = hex.EncodeToString(key)
			break
		}
	}
	itr.Value = itr.genBytes(itr.gen.ValueMean, itr.gen.ValueStdDev)
	return nil
}

// genBytes draws a normally distributed length around mean. A draw
// below 1 is retried closer to the mean instead of clamped, which
// would skew the length distribution towards 0.
func (itr *KeysetIterator) genBytes(mean, stdDev int) []byte {
	length := int(itr.rand.NormFloat64()*float64(stdDev) + float64(mean))
	if length < 1 {
		length = int(itr.rand.NormFloat64()*float64(mean/3) + float64(mean))
		if length < 1 {
			length = 1
		}
	}
	b := make([]byte, length)
	itr.rand.Read(b)
	return b
}
