package animation_test

import (
	"fmt"
	"time"

	"github.com/go-elastic/elasticlist/pkg/animation"
	elastictesting "github.com/go-elastic/elasticlist/pkg/testing"
)

func ExampleSpringback() {
	clock := elastictesting.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	var height float64 = 100
	s := &animation.Springback{
		Duration:    time.Second,
		Curve:       animation.LinearCurve,
		WriteHeight: func(h float64) { height = h },
	}
	s.Start(100, -100)

	for i := 0; i < 4; i++ {
		clock.Advance(250 * time.Millisecond)
		animation.StepTickers()
		fmt.Printf("%.0f\n", height)
	}
	// Output:
	// 75
	// 50
	// 25
	// 0
}
