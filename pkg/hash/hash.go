package hash

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of the output of Sum.
const DigestLengthBytes = 32

// Hash is the hash function used for commitments and seed derivation.
//
// Internally this wraps blake3, but any hash with an extendable output
// would work as well. Every written value is framed with a domain string
// and a length so that concatenation ambiguities cannot arise.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is initialized with the given domain.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	writeFramed(hash.h, "Domain", []byte(domain))
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state and returns what is essentially a
// stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the
// current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes the given values to the hash state.
//
// Supported types:
//
//   - []byte
//   - string
//   - uint64
//   - *saferith.Nat
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			writeFramed(hash.h, "[]byte", t)
		case string:
			writeFramed(hash.h, "string", []byte(t))
		case uint64:
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], t)
			writeFramed(hash.h, "uint64", buf[:])
		case *saferith.Nat:
			if t == nil {
				return fmt.Errorf("hash.WriteAny: write *saferith.Nat: nil")
			}
			writeFramed(hash.h, "saferith.Nat", t.Bytes())
		default:
			panic("hash.WriteAny: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

func writeFramed(w io.Writer, domain string, data []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(domain)))
	_, _ = w.Write(length[:])
	_, _ = w.Write([]byte(domain))
	binary.BigEndian.PutUint64(length[:], uint64(len(data)))
	_, _ = w.Write(length[:])
	_, _ = w.Write(data)
}
