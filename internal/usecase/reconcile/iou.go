package reconcile

import (
	"math"

	"github.com/aalvaropc/vilain/internal/domain"
)

// IoU is the intersection over union of two boxes. A zero or negative
// union yields 0.
func IoU(a, b domain.Box) float64 {
	ix := math.Min(a.Coords[2], b.Coords[2]) - math.Max(a.Coords[0], b.Coords[0])
	iy := math.Min(a.Coords[3], b.Coords[3]) - math.Max(a.Coords[1], b.Coords[1])

	inter := 0.0
	if ix > 0 && iy > 0 {
		inter = ix * iy
	}

	union := a.Area() + b.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}
