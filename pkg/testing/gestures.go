package testing

import "github.com/go-elastic/elasticlist/pkg/elastic"

// Gestures scripts touch sequences against a controller. All calls
// must run on the engine context, like the controller methods they
// wrap.
type Gestures struct {
	Ctrl *elastic.Controller
}

// Drag performs a full down-move-up sequence from fromY to toY in the
// given number of steps. Returns true when the release was absorbed by
// a decoration.
func (g Gestures) Drag(fromY, toY float64, steps int) bool {
	g.DragHold(fromY, toY, steps)
	return g.Ctrl.HandleTouchUp()
}

// DragHold performs down and moves but keeps the finger down, so the
// test can inspect mid-gesture state or cancel.
func (g Gestures) DragHold(fromY, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	g.Ctrl.HandleTouchDown(fromY)
	step := (toY - fromY) / float64(steps)
	y := fromY
	for i := 0; i < steps; i++ {
		y += step
		g.Ctrl.HandleTouchMove(y)
	}
}

// PullDown drags downward by dist, starting from y 0.
func (g Gestures) PullDown(dist float64, steps int) bool {
	return g.Drag(0, dist, steps)
}

// PullUp drags upward by dist, starting from y 0.
func (g Gestures) PullUp(dist float64, steps int) bool {
	return g.Drag(0, -dist, steps)
}
