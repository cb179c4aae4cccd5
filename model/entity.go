package model

import (
	"gridshooter/raycast"
	"gridshooter/world"
)

// Entity is the pose shared by the player and enemies. Angle is the facing
// for the player and the last step heading for an enemy.
type Entity struct {
	Position world.Pos
	Angle    float64
}

func (e *Entity) Pos() world.Pos {
	return e.Position
}

func (e *Entity) Cell() world.Cell {
	return e.Position.Cell()
}

// Scene holds the read only handles every entity consults.
type Scene struct {
	Grid   *world.Grid
	Paths  *world.PathFinder
	Camera *raycast.Camera
}

func NewScene(grid *world.Grid, camera *raycast.Camera) *Scene {
	return &Scene{
		Grid:   grid,
		Paths:  world.NewPathFinder(world.NewGraph(grid)),
		Camera: camera,
	}
}
