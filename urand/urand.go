package urand

import "math/bits"

// Source yields independently and uniformly distributed uint32 values.
// UniformUint32 is inclusive of both bounds; min must not exceed max.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	UniformUint32(min, max uint32) uint32
}

// PCG is a PCG-XSH-RR 64/32 pseudorandom generator: a 64-bit linear
// congruential state compressed to 32 output bits by an xorshift
// followed by a random rotation. The zero value is invalid; use New.
type PCG struct {
	state uint64
	inc   uint64
}

const (
	pcgMult = 6364136223846793005

	// default stream selector; any odd value defines a valid stream
	pcgInc = 1442695040888963407
)

// compile-time interface check
var _ Source = (*PCG)(nil)

// New returns a PCG seeded with seed on the default stream.
// Two generators built from the same seed produce identical sequences.
func New(seed uint64) *PCG {
	p := &PCG{inc: pcgInc | 1}
	p.state = p.inc + seed
	p.Uint32() // advance past the correlated initial state

	return p
}

// Uint32 returns the next uniform value on the full 32-bit range.
func (p *PCG) Uint32() uint32 {
	old := p.state
	p.state = old*pcgMult + p.inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)

	return bits.RotateLeft32(xorshifted, -rot)
}

// UniformUint32 returns the next uniform value on [min, max], inclusive
// of both bounds. Requires min <= max; the pair is swapped otherwise so
// the call stays total.
//
// Debiasing uses Lemire's multiply-shift reduction: keep the high half
// of Uint32()*span and reject the small aliased band of low products,
// so each of the span values is hit by exactly the same number of raw
// draws. Expected rejections per call are below one for every span.
func (p *PCG) UniformUint32(min, max uint32) uint32 {
	if min > max {
		min, max = max, min
	}
	span := max - min + 1
	if span == 0 {
		// [0, MaxUint32]: the raw draw is already uniform
		return p.Uint32()
	}

	m := uint64(p.Uint32()) * uint64(span)
	if lo := uint32(m); lo < span {
		threshold := -span % span
		for lo < threshold {
			m = uint64(p.Uint32()) * uint64(span)
			lo = uint32(m)
		}
	}

	return min + uint32(m>>32)
}
