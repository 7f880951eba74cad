// Package identity supplies the block key generators used by
// document-level conversions into the editor-state model.
package identity

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// KeyGenerator produces the key for the block at a 0-based position.
type KeyGenerator interface {
	BlockKey(index int) string
}

type sequentialKeys struct {
	base string
}

// SequentialKeys returns the default generator: keys are {base}_{index}
// in input order. An empty base falls back to "1".
func SequentialKeys(base string) KeyGenerator {
	if base == "" {
		base = "1"
	}
	return sequentialKeys{base: base}
}

func (g sequentialKeys) BlockKey(index int) string {
	return fmt.Sprintf("%s_%d", g.base, index)
}

var (
	entropy     io.Reader
	entropyOnce sync.Once
)

// defaultEntropy returns a reader that generates ULID entropy.
func defaultEntropy() io.Reader {
	entropyOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		entropy = &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rng, 0),
		}
	})
	return entropy
}

type ulidKeys struct{}

// ULIDKeys returns a generator producing a fresh ULID per block.
// Meant for callers inserting blocks into an existing document, where
// index-derived keys would collide with keys already in use.
func ULIDKeys() KeyGenerator {
	return ulidKeys{}
}

func (ulidKeys) BlockKey(int) string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), defaultEntropy()).String()
}
