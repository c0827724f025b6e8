package hearts

import (
	"math"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// HeartSteps is the number of samples taken along the heart curve.
const HeartSteps = 100

// heartUnit holds the curve sampled once at unit size:
//
//	x(t) = 16 sin^3(2πt)
//	y(t) = -(13 cos(2πt) - 5 cos(4πt) - 2 cos(6πt) - cos(8πt))
//
// for t = i/HeartSteps. The outline spans about 32 units across.
var heartUnit = func() [HeartSteps]core.Vec {
	var pts [HeartSteps]core.Vec
	for i := range pts {
		a := 2 * math.Pi * float64(i) / HeartSteps
		s := math.Sin(a)
		pts[i] = core.Vec{
			X: 16 * s * s * s,
			Y: -(13*math.Cos(a) - 5*math.Cos(2*a) - 2*math.Cos(3*a) - math.Cos(4*a)),
		}
	}
	return pts
}()

// HeartOutline returns the closed heart outline centered at center.
// Points are scaled by size*scale, rotated by angle degrees about the
// heart's origin, then translated.
func HeartOutline(center core.Vec, size, angle, scale float64) []core.Vec {
	out := make([]core.Vec, HeartSteps)
	k := size * scale
	for i, p := range heartUnit {
		out[i] = p.Scale(k).Rotate(angle).Add(center)
	}
	return out
}
