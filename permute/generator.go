package permute

// Generator streams one whole permutation of [0, length) in constant
// space: position k of the stream is Permute(k, length, seed). Useful
// when the permuted order is consumed incrementally and materializing
// an index array is unwanted.
//
// A Generator is not safe for concurrent use; independent goroutines
// should each construct their own (construction is free).
type Generator struct {
	length uint32
	seed   uint32
	next   uint32
}

// NewGenerator returns a Generator over [0, length) under seed.
// Returns ErrZeroLength when length == 0.
func NewGenerator(length, seed uint32) (*Generator, error) {
	if length == 0 {
		return nil, ErrZeroLength
	}

	return &Generator{length: length, seed: seed}, nil
}

// Next returns the next permuted value and true, or (0, false) once
// all length values have been produced. Each value in [0, length)
// appears exactly once per pass.
func (g *Generator) Next() (uint32, bool) {
	if g.next >= g.length {
		return 0, false
	}

	// Permute cannot fail here: length >= 1 and next < length.
	v, _ := Permute(g.next, g.length, g.seed)
	g.next++

	return v, true
}

// Reset rewinds the stream to position zero for another pass.
func (g *Generator) Reset() {
	g.next = 0
}

// Len reports the stream length.
func (g *Generator) Len() uint32 {
	return g.length
}
