package prompt

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// splitmix is a self-contained 64-bit generator so selections stay stable
// regardless of math/rand implementation changes.
type splitmix struct {
	state uint64
}

func (s *splitmix) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a value in [0, n).
func (s *splitmix) intn(n int) int {
	return int(s.next() % uint64(n))
}

// seedFrom derives a 48-bit seed from the leading 12 hex digits of the
// SHA-256 digest of material.
func seedFrom(material string) uint64 {
	sum := sha256.Sum256([]byte(material))
	var buf [8]byte
	copy(buf[2:], sum[:6])
	return binary.BigEndian.Uint64(buf[:])
}

func newGenerator(material string) *splitmix {
	return &splitmix{state: seedFrom(material)}
}

// PickIndex maps seed material to an index in [0, n). It is pure: equal
// inputs always yield equal outputs. n must be positive.
func PickIndex(material string, n int) int {
	if n <= 0 {
		return 0
	}
	return newGenerator(material).intn(n)
}

// PickVariant selects one of values for the (run, style, slot) triple.
func PickVariant(runID, styleKey string, slot int, values []string) string {
	if len(values) == 0 {
		return ""
	}
	material := runID + ":" + styleKey + ":" + strconv.Itoa(slot)
	return values[PickIndex(material, len(values))]
}

// shuffled returns a permuted copy of values using Fisher-Yates driven by
// the generator seeded from material.
func shuffled(material string, values []string) []string {
	out := append([]string(nil), values...)
	gen := newGenerator(material)
	for i := len(out) - 1; i > 0; i-- {
		j := gen.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
