package planar

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseSumCoords computes the sum of a list of 2D coordinates.
// Input is de-interleaved (separate slices for X and Y).
func BaseSumCoords[T hwy.Floats](xs, ys []T) (sumX, sumY T) {
	size := min(len(xs), len(ys))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])

			vSumX = hwy.Add(vSumX, vx)
			vSumY = hwy.Add(vSumY, vy)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			vSumX = hwy.Add(vSumX, vx)
			vSumY = hwy.Add(vSumY, vy)
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY)
}

// BaseBatchMinMax computes the minimum and maximum values in a slice.
// Used for computing bounding boxes of ring coordinates.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed with the first value so masked lanes never win.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}

// splitXY de-interleaves coordinates for the kernels above.
func splitXY(cs []Coord) (xs, ys []float64) {
	xs = make([]float64, len(cs))
	ys = make([]float64, len(cs))
	for i, c := range cs {
		xs[i] = c.X
		ys[i] = c.Y
	}
	return xs, ys
}
