package grid

import (
	"iter"
	"math/bits"
)

// Bits is a fixed-length packed boolean array.
type Bits struct {
	n    int
	data []byte
}

// NewBits returns n cleared flags. A negative n is treated as 0.
func NewBits(n int) *Bits {
	if n < 0 {
		n = 0
	}
	return &Bits{n: n, data: make([]byte, (n+7)/8)}
}

// Len returns the number of flags.
func (b *Bits) Len() int { return b.n }

// Get reports flag i. It panics if i is outside [0, Len()), like a slice.
func (b *Bits) Get(i int) bool {
	b.check(i)
	return b.data[i/8]&(1<<(i%8)) != 0
}

// Set raises flag i.
func (b *Bits) Set(i int) {
	b.check(i)
	b.data[i/8] |= 1 << (i % 8)
}

// Count returns the number of raised flags.
func (b *Bits) Count() int {
	n := 0
	for _, v := range b.data {
		n += bits.OnesCount8(v)
	}
	return n
}

// All yields every (index, flag) pair in order.
func (b *Bits) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.data[i/8]&(1<<(i%8)) != 0) {
				return
			}
		}
	}
}

func (b *Bits) check(i int) {
	if i < 0 || i >= b.n {
		panic(outOfBounds(AxisX, i, b.n))
	}
}
