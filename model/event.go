package model

import (
	"github.com/google/uuid"

	"gridshooter/world"
)

// Event is produced by an update and handled by the game after all entities
// have moved.
type Event interface {
	event()
}

// AttackEvent is an enemy shot landing on the player.
type AttackEvent struct {
	Enemy  uuid.UUID
	Damage int
}

type GameOverEvent struct{}

func (AttackEvent) event()   {}
func (GameOverEvent) event() {}

// Sighting is where an enemy stood when the snapshot was taken.
type Sighting struct {
	ID    uuid.UUID
	Cell  world.Cell
	Alive bool
}

// Snapshot is the frozen view of every enemy at the start of a tick. Enemies
// only ever read each other through it.
type Snapshot []Sighting

func TakeSnapshot(enemies []*Enemy) Snapshot {
	snap := make(Snapshot, len(enemies))
	for i, e := range enemies {
		snap[i] = Sighting{ID: e.ID(), Cell: e.Cell(), Alive: e.Alive()}
	}
	return snap
}

// Occupied returns the cells of every living enemy except self.
func (s Snapshot) Occupied(self uuid.UUID) []world.Cell {
	cells := make([]world.Cell, 0, len(s))
	for _, sighting := range s {
		if sighting.ID == self || !sighting.Alive {
			continue
		}
		cells = append(cells, sighting.Cell)
	}
	return cells
}
