package sample

import (
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/quorumkey/dkgsim/pkg/hash"
)

// NewSeededReader returns a deterministic byte stream derived from seed.
// Two readers built from the same seed produce identical streams, which
// makes an entire protocol run reproducible. It must not be used outside
// of simulations and tests; production sessions take crypto/rand.Reader.
func NewSeededReader(seed uint64) io.Reader {
	h := hash.New("dkgsim/seed")
	_ = h.WriteAny(seed)

	var key [chacha20.KeySize]byte
	if _, err := io.ReadFull(h.Digest(), key[:]); err != nil {
		panic("sample: seed derivation failed: " + err.Error())
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		panic("sample: chacha20 init failed: " + err.Error())
	}
	return &streamReader{cipher: cipher}
}

type streamReader struct {
	cipher *chacha20.Cipher
}

func (r *streamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
