package core_test

// scriptRand replays a fixed sequence of values, cycling when exhausted.
type scriptRand struct {
	vals []int
	i    int
}

func script(vals ...int) *scriptRand {
	return &scriptRand{vals: vals}
}

func (r *scriptRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}
