// Package seed derives independent, reproducible random sources for
// simulation runs.
//
// Every (base seed, target, run index, draw) tuple maps to its own ChaCha12
// stream, so a batch gives identical results however its runs are
// scheduled across workers.
package seed

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/crypto/blake2b"
	"lukechampine.com/frand"
)

const (
	bufSize = 1024
	rounds  = 12
)

// Derive returns BLAKE2b-256(key=base, target "|" run), with "|" draw
// appended when draw is above zero. draw separates repeats of one target
// within a run.
func Derive(base int64, target string, run, draw int) [32]byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(base))

	h, err := blake2b.New256(key[:])
	if err != nil {
		// only possible for keys longer than 64 bytes
		panic(err)
	}
	h.Write([]byte(target))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(run)))
	if draw > 0 {
		h.Write([]byte{'|'})
		h.Write([]byte(strconv.Itoa(draw)))
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Picker returns the random source for one game.
func Picker(base int64, target string, run, draw int) *frand.RNG {
	s := Derive(base, target, run, draw)
	return frand.NewCustom(s[:], bufSize, rounds)
}
