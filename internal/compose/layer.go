package compose

import "math"

// Layer is a mutable sample buffer scoped to one request, accumulated
// additively by the note events of one musical role.
type Layer []float64

// newLayer allocates a silent layer of exactly duration*sampleRate samples.
func newLayer(duration float64, sampleRate int) Layer {
	return make(Layer, int(math.Round(duration*float64(sampleRate))))
}

// add sums src into the layer starting at the given time, clipping at the
// buffer end. Overlapping events sum rather than replace.
func (l Layer) add(startSeconds float64, sampleRate int, src []float64) {
	offset := int(startSeconds * float64(sampleRate))
	if offset < 0 {
		return
	}
	for i, v := range src {
		j := offset + i
		if j >= len(l) {
			return
		}
		l[j] += v
	}
}

// fit pads with silence or truncates so the layer is exactly target samples.
func (l Layer) fit(target int) Layer {
	if len(l) == target {
		return l
	}
	if len(l) > target {
		return l[:target]
	}
	padded := make(Layer, target)
	copy(padded, l)
	return padded
}
