// Package sampling implements deterministic generation of pseudo-random bytes
// and floats, used to draw reproducible sample points for numeric experiments.
package sampling

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of pseudo-random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a shared sequence of pseudo-random bytes from a key, using the
// extendable output mode of the hash function blake2b. Two KeyedPRNG
// instantiated with the same key produce the same stream.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// KeyFromLabel derives a 32-byte PRNG key from an arbitrary string label by
// hashing it with blake3. It enables labeling independent deterministic
// streams without managing raw keys.
func KeyFromLabel(label string) []byte {
	hasher := blake3.New()
	hasher.Write([]byte(label))
	sum := hasher.Sum(nil)
	return sum[:32]
}

// RandFloat64 returns a pseudo-random float between min and max, drawn from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
