// Package entity holds the simulated objects of the space background:
// twinkling stars, comets with fading trails and hover sparks.
package entity

// Canvas is the drawable area shared by a scene and its entities.
// Entities hold a pointer so a resize is visible on their next update.
type Canvas struct {
	Width, Height float64
}

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}
