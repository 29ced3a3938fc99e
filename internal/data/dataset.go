// Package data provides small in-memory training datasets.
package data

// Sample is one training pair.
type Sample struct {
	Inputs []float64
	Target float64
}

// Dataset is an ordered, read-only collection of samples.
type Dataset struct {
	name    string
	samples []Sample
}

// New creates a dataset from samples. The slice is copied.
func New(name string, samples []Sample) *Dataset {
	cp := make([]Sample, len(samples))
	for i, s := range samples {
		cp[i] = Sample{
			Inputs: append([]float64(nil), s.Inputs...),
			Target: s.Target,
		}
	}
	return &Dataset{name: name, samples: cp}
}

// XOR returns the four exclusive-or pairs in input order 00, 01, 10, 11.
func XOR() *Dataset {
	return New("xor", []Sample{
		{Inputs: []float64{0, 0}, Target: 0},
		{Inputs: []float64{0, 1}, Target: 1},
		{Inputs: []float64{1, 0}, Target: 1},
		{Inputs: []float64{1, 1}, Target: 0},
	})
}

// Name returns the dataset name.
func (d *Dataset) Name() string {
	return d.name
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

// At returns the sample at index i.
func (d *Dataset) At(i int) Sample {
	return d.samples[i]
}

// Samples returns the samples in order. Callers must not modify them.
func (d *Dataset) Samples() []Sample {
	return d.samples
}

// InputWidth returns the number of inputs per sample, or 0 for an empty dataset.
func (d *Dataset) InputWidth() int {
	if len(d.samples) == 0 {
		return 0
	}
	return len(d.samples[0].Inputs)
}
