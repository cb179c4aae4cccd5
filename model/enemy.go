package model

import (
	"math"

	"github.com/google/uuid"

	"gridshooter/engine"
	"gridshooter/raycast"
	"gridshooter/world"
)

// State is the single authoritative enemy state. Higher values win over
// lower ones.
type State int

const (
	Idle State = iota
	Walking
	InPain
	Shooting
	Dying
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case InPain:
		return "in_pain"
	case Shooting:
		return "shooting"
	case Dying:
		return "dying"
	}
	return "unknown"
}

// EnemyStats are the tunables of an enemy archetype.
type EnemyStats struct {
	Life      int
	Damage    int
	Shift     float64
	Scale     float64
	Speed     float64
	Cooldown  int
	HitMargin float64
}

func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
		Life:      100,
		Damage:    5,
		Shift:     0.27,
		Scale:     0.7,
		Speed:     0.002,
		Cooldown:  300,
		HitMargin: 80,
	}
}

type Enemy struct {
	*Entity

	id    uuid.UUID
	stats EnemyStats
	life  int
	state State
	seq   EnemySequence

	cooldown int

	// cached projection, refreshed every update
	screenX float64
	dist    float64

	scene *Scene
}

func NewEnemy(pos world.Pos, stats EnemyStats, seq EnemySequence, scene *Scene) *Enemy {
	return &Enemy{
		Entity: &Entity{Position: pos},
		id:     uuid.New(),
		stats:  stats,
		life:   stats.Life,
		seq:    seq,
		scene:  scene,
	}
}

func (e *Enemy) ID() uuid.UUID     { return e.id }
func (e *Enemy) Life() int         { return e.life }
func (e *Enemy) State() State      { return e.state }
func (e *Enemy) Alive() bool       { return e.life > 0 }
func (e *Enemy) ScreenX() float64  { return e.screenX }
func (e *Enemy) Distance() float64 { return e.dist }

func (e *Enemy) Sequences() EnemySequence { return e.seq }

// enter moves to s unless the current state outranks it.
func (e *Enemy) enter(s State) {
	if s > e.state {
		e.state = s
	}
}

// Update runs one tick of the state machine against the snapshot taken at
// the start of the tick. It returns an event when the enemy attacks.
func (e *Enemy) Update(player *Player, snap Snapshot) Event {
	switch e.state {
	case Dying:
		e.seq.Dying.Next()
		if e.seq.Dying.LastFrame() {
			e.seq.Dying.Block()
		}
	case Shooting:
		if e.cooldown >= e.stats.Cooldown {
			e.cooldown = 0
			e.state = Idle
		} else {
			e.cooldown++
			e.seq.Shoot.Next()
		}
	case InPain:
		if e.seq.Pain.Done() {
			e.state = Idle
			e.seq.Pain.Reset()
		} else {
			e.seq.Pain.Next()
		}
	case Walking:
		e.seq.Walk.Next()
	}

	e.project(player)

	if e.Alive() && e.state != Shooting {
		return e.Move(player, snap.Occupied(e.id))
	}
	return nil
}

// Move either opens fire on an adjacent player or takes a small step along
// the shortest path around the occupied cells.
func (e *Enemy) Move(player *Player, occupied []world.Cell) Event {
	target := player.Cell()

	if e.Cell().Near(target) {
		if e.state == InPain {
			e.seq.Pain.Reset()
		}
		e.enter(Shooting)
		return AttackEvent{Enemy: e.id, Damage: e.stats.Damage}
	}

	next, ok := e.scene.Paths.Next(e.Cell(), target, occupied)
	if !ok {
		if e.state == Walking {
			e.state = Idle
		}
		return nil
	}

	e.enter(Walking)

	center := next.Center()
	e.Angle = math.Atan2(center.Y-e.Position.Y, center.X-e.Position.X)
	e.Position = e.Position.Add(world.NewPos(math.Cos(e.Angle)*e.stats.Speed, math.Sin(e.Angle)*e.stats.Speed))

	return nil
}

// project caches where the enemy lands on screen, relative to the player's
// view direction.
func (e *Enemy) project(player *Player) {
	d := e.Position.Sub(player.Pos())
	theta := math.Atan2(d.Y, d.X)

	delta := theta - player.Angle
	if (d.X > 0 && player.Angle > math.Pi) || (d.X < 0 && d.Y < 0) {
		delta += 2 * math.Pi
	}

	e.screenX = e.scene.Camera.SpriteX(delta)
	e.dist = d.Len() * math.Cos(delta)
}

// Hit resolves a shot from the player. The enemy must sit near the middle of
// the screen with no wall in between. A hit puts it in pain; the caller
// applies the damage.
func (e *Enemy) Hit(player *Player) bool {
	if !e.Alive() {
		return false
	}

	half := float64(e.scene.Camera.Width()) / 2
	if e.screenX <= half-e.stats.HitMargin || e.screenX >= half+e.stats.HitMargin {
		return false
	}

	d := e.Position.Sub(player.Pos())
	if !raycast.Visible(e.scene.Grid, player.Pos(), math.Atan2(d.Y, d.X), e.Cell()) {
		return false
	}

	if e.state < InPain {
		e.seq.Pain.Reset()
	}
	// a Shooting enemy keeps firing; its flinch is dropped, not queued
	e.enter(InPain)
	return true
}

// Damage subtracts life and starts dying once it runs out.
func (e *Enemy) Damage(n int) {
	e.life -= n
	if e.life <= 0 && e.state != Dying {
		e.state = Dying
		e.seq.Dying.Reset()
	}
}

func (e *Enemy) Texture() engine.TextureRef {
	switch e.state {
	case Dying:
		return e.seq.Dying.Texture()
	case Shooting:
		return e.seq.Shoot.Texture()
	case InPain:
		return e.seq.Pain.Texture()
	}
	return e.seq.Walk.Texture()
}

// Visible reports whether the sprite falls within the screen. It may still
// be hidden behind a wall; depth sorting takes care of that.
func (e *Enemy) Visible() bool {
	halfWidth := float64(e.Texture().Width) / 2
	width := float64(e.scene.Camera.Width())

	return -halfWidth < e.screenX && e.screenX < width+halfWidth && e.dist > 0.5
}

func (e *Enemy) Billboard() engine.Billboard {
	cam := e.scene.Camera
	texture := e.Texture()

	height := cam.ScreenDistance() / e.dist * e.stats.Scale
	width := height * texture.Ratio

	return engine.Billboard{
		Dist:    e.dist,
		Texture: texture.ID,
		X:       e.screenX - width/2,
		Y:       float64(cam.Height())/2 - height/2 + height*e.stats.Shift,
		Width:   width,
		Height:  height,
	}
}
