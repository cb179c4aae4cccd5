package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"gridshooter/engine"
	"gridshooter/world"
)

// Move is a walking direction relative to the player's facing.
type Move int

const (
	North Move = iota
	South
	West
	East
)

const (
	Pi2 = 2 * math.Pi

	painTicks = 100
)

type Player struct {
	*Entity
	Speed float64

	life    int
	maxLife int

	pain      bool
	painCount int
}

func NewPlayer(x, y, angle, speed float64, life int) *Player {
	p := &Player{
		Entity: &Entity{
			Position: world.NewPos(x, y),
			Angle:    angle,
		},
		Speed:   speed,
		life:    life,
		maxLife: life,
	}

	return p
}

func (p *Player) Life() int    { return p.life }
func (p *Player) Alive() bool  { return p.life > 0 }
func (p *Player) InPain() bool { return p.pain }

// Walk moves the player one step scaled by dt. The move is dropped when the
// destination is a wall.
func (p *Player) Walk(grid *world.Grid, mov Move, dt float64) bool {
	sin, cos := math.Sincos(p.Angle)
	speed := p.Speed * dt

	var dx, dy float64
	switch mov {
	case North:
		dx, dy = speed*cos, speed*sin
	case South:
		dx, dy = -speed*cos, -speed*sin
	case West:
		dx, dy = speed*sin, -speed*cos
	case East:
		dx, dy = -speed*sin, speed*cos
	}

	next := p.Position.Add(world.NewPos(dx, dy))
	if grid.IsWall(next.Cell()) {
		return false
	}

	p.Position = next
	return true
}

// Spin rotates the heading, keeping it within [0, 2π).
func (p *Player) Spin(angle float64) {
	p.Angle = math.Mod(p.Angle+angle, Pi2)
	if p.Angle < 0 {
		p.Angle += Pi2
	}
}

// Hurt takes damage and starts the pain flash.
func (p *Player) Hurt(damage int) {
	p.life = int(geom.Clamp(float64(p.life-damage), 0, float64(p.maxLife)))
	p.pain = true
	p.painCount = 0
}

func (p *Player) Update() {
	if !p.pain {
		return
	}

	p.painCount++
	if p.painCount >= painTicks {
		p.pain = false
		p.painCount = 0
	}
}

// Commands returns the HUD items owned by the player.
func (p *Player) Commands() []engine.DrawCommand {
	commands := []engine.DrawCommand{engine.LifeCounter{Life: p.life}}
	if p.pain {
		commands = append(commands, engine.PainFlash{})
	}
	return commands
}
