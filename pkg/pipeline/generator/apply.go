package generator

import (
	"github.com/go-gl/mathgl/mgl64"
)

type applyToX struct {
	child node
}

func (a applyToX) eval(x, y, _ float64) float64 {
	return a.child.eval(x, y, x)
}

type applyToY struct {
	child node
}

func (a applyToY) eval(x, y, _ float64) float64 {
	return a.child.eval(x, y, y)
}

type applyToDistance struct {
	child  node
	center mgl64.Vec2
}

func newApplyToDistance(child node, centerX, centerY float64) applyToDistance {
	return applyToDistance{child: child, center: mgl64.Vec2{centerX, centerY}}
}

func (a applyToDistance) eval(x, y, _ float64) float64 {
	distance := mgl64.Vec2{x, y}.Sub(a.center).Len()

	return a.child.eval(x, y, distance)
}

type index struct {
	width float64
}

func (i index) eval(x, y, _ float64) float64 {
	return y*i.width + x
}
