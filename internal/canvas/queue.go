package canvas

import (
	"image"

	"github.com/example/mixpaint/internal/pigment"
)

// Sample is one pending disc stamp.
type Sample struct {
	image.Point
	Color  pigment.Color
	Radius int
}

// PaintQueue buffers samples until the next flush. Samples are stamped in
// the order they were enqueued, so later samples win where discs overlap.
type PaintQueue struct {
	samples []Sample
}

// Enqueue appends s.
func (q *PaintQueue) Enqueue(s Sample) { q.samples = append(q.samples, s) }

// Len reports the number of pending samples.
func (q *PaintQueue) Len() int { return len(q.samples) }

