package key

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the key. Equal keys hash equally;
// kinds participate, so Bool(true) and Int(1) hash independently. A
// slice key hashes through its decomposed (start, stop, step) triple.
func (k Key) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	k.appendHash(&h)
	return h.Sum64()
}

// HashKeys hashes an ordered key sequence, order-dependently.
func HashKeys(keys []Key) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint64(b[:], k.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

// posZero collapses the two floating point zeros: 0.0 == -0.0, so
// they must hash equally.
func posZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func (k Key) appendHash(h *maphash.Hash) {
	h.WriteByte(byte(k.kind))
	var b [8]byte
	switch k.kind {
	case IntKind:
		binary.LittleEndian.PutUint64(b[:], uint64(k.i))
		h.Write(b[:])
	case FloatKind:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(posZero(k.f)))
		h.Write(b[:])
	case ComplexKind:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(posZero(real(k.c))))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(posZero(imag(k.c))))
		h.Write(b[:])
	case BoolKind:
		if k.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NoneKind:
	case StringKind:
		h.WriteString(k.s)
	case SliceKind:
		for _, p := range []*int64{k.start, k.stop, k.step} {
			if p == nil {
				h.WriteByte(0)
				continue
			}
			h.WriteByte(1)
			binary.LittleEndian.PutUint64(b[:], uint64(*p))
			h.Write(b[:])
		}
	case TupleKind:
		binary.LittleEndian.PutUint64(b[:], uint64(len(k.elems)))
		h.Write(b[:])
		for _, e := range k.elems {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	}
}
