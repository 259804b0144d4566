package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// Screen angles: 0° is 3 o'clock and angles grow clockwise because y points down.
// The dial opens at the bottom: it starts at 7:30 and sweeps 270° to 4:30.
const (
	arcStartAngle = 135.0
	arcSweep      = 270.0
	arcThickness  = 4
)

func drawFullArc(canvas *drawille.Canvas, centerX, centerY, radius float64) {
	drawArc(canvas, centerX, centerY, radius, arcStartAngle, arcSweep)
}

func drawFilledArc(canvas *drawille.Canvas, centerX, centerY, radius, fraction float64) {
	if fraction <= 0 {
		return
	}
	drawArc(canvas, centerX, centerY, radius, arcStartAngle, min(fraction, 1)*arcSweep)
}

// drawArc draws concentric midpoint-circle rings clipped to the angle range.
func drawArc(canvas *drawille.Canvas, centerX, centerY, radius, startAngle, sweepAngle float64) {
	endAngle := startAngle + sweepAngle

	for t := range arcThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}
		ring(canvas, int(centerX), int(centerY), r, startAngle, endAngle)
	}
}

// ring walks one octant with the midpoint circle algorithm and mirrors it.
func ring(canvas *drawille.Canvas, cx, cy, radius int, startAngle, endAngle float64) {
	x, y := radius, 0
	d := 1 - radius

	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy - y}, {cx + y, cy - x},
			{cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x},
			{cx + y, cy + x}, {cx + x, cy + y},
		} {
			if inArc(cx, cy, p[0], p[1], startAngle, endAngle) {
				canvas.Set(p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// inArc reports whether the point lies within [startAngle, endAngle]. endAngle
// may exceed 360 when the arc wraps past 3 o'clock.
func inArc(cx, cy, px, py int, startAngle, endAngle float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	if endAngle > 360 {
		return angle >= startAngle || angle <= endAngle-360
	}
	return angle >= startAngle && angle <= endAngle
}
