package sampler

// Sequence is a Source that replays fixed values in order, wrapping around
// when exhausted. An empty list yields zero.
type Sequence struct {
	uniform []float64
	normal  []float64
	ui, ni  int
}

// NewSequence creates a Sequence. uniform values should lie in [0, 1);
// normal values are standard-normal variates.
func NewSequence(uniform, normal []float64) *Sequence {
	return &Sequence{
		uniform: append([]float64(nil), uniform...),
		normal:  append([]float64(nil), normal...),
	}
}

// Float64 returns the next uniform value.
func (q *Sequence) Float64() float64 {
	if len(q.uniform) == 0 {
		return 0
	}
	v := q.uniform[q.ui%len(q.uniform)]
	q.ui++
	return v
}

// NormFloat64 returns the next normal value.
func (q *Sequence) NormFloat64() float64 {
	if len(q.normal) == 0 {
		return 0
	}
	v := q.normal[q.ni%len(q.normal)]
	q.ni++
	return v
}
