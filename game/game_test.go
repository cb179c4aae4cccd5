package game

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridshooter/config"
	"gridshooter/engine"
	"gridshooter/model"
	"gridshooter/world"
)

type fakeDriver struct {
	inputs   []engine.Input
	frames   [][]engine.DrawCommand
	sounds   []string
	centered int
	loaded   []engine.TextureID
}

func (d *fakeDriver) PlayShoot()       { d.sounds = append(d.sounds, "shoot") }
func (d *fakeDriver) PlayEnemyPain()   { d.sounds = append(d.sounds, "enemy_pain") }
func (d *fakeDriver) PlayEnemyAttack() { d.sounds = append(d.sounds, "enemy_attack") }
func (d *fakeDriver) PlayPlayerPain()  { d.sounds = append(d.sounds, "player_pain") }

func (d *fakeDriver) Poll() (engine.Input, bool) {
	if len(d.inputs) == 0 {
		return engine.Input{}, false
	}
	in := d.inputs[0]
	d.inputs = d.inputs[1:]
	return in, true
}

func (d *fakeDriver) ElapsedTime() float64 { return 16 }

func (d *fakeDriver) Render(commands []engine.DrawCommand) {
	d.frames = append(d.frames, commands)
}

func (d *fakeDriver) LoadTextureRefs(ids ...engine.TextureID) ([]engine.TextureRef, error) {
	d.loaded = append(d.loaded, ids...)
	refs := make([]engine.TextureRef, len(ids))
	for i, id := range ids {
		refs[i] = engine.TextureRef{ID: id, Width: 256, Ratio: 1}
	}
	return refs, nil
}

func (d *fakeDriver) CenterMouse(x, y int) { d.centered++ }

func (d *fakeDriver) Loop(ctx context.Context, step func() bool) error {
	for i := 0; i < 1000; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if step() {
			return nil
		}
	}
	return nil
}

func (d *fakeDriver) lastFrame() []engine.DrawCommand {
	return d.frames[len(d.frames)-1]
}

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	return cfg
}

func newTestGame(t *testing.T) (*Game, *fakeDriver) {
	d := &fakeDriver{}
	g, err := New(d, testConfig(t), world.DefaultLevel(), nil)
	require.NoError(t, err)
	return g, d
}

func countKind[T engine.DrawCommand](commands []engine.DrawCommand) int {
	n := 0
	for _, c := range commands {
		if _, ok := c.(T); ok {
			n++
		}
	}
	return n
}

func TestNewGameDefaults(t *testing.T) {
	g, d := newTestGame(t)

	assert.Equal(t, world.NewPos(1.5, 5.0), g.Player().Pos())
	assert.Equal(t, 100, g.Player().Life())
	require.Len(t, g.Enemies(), 1)
	assert.Equal(t, world.NewPos(10.5, 3.5), g.Enemies()[0].Pos())
	assert.Equal(t, 100, g.Enemies()[0].Life())
	assert.Contains(t, d.loaded, engine.TextureSoldierDead8)
	assert.Contains(t, d.loaded, engine.TextureWeaponReload4)
}

func TestSpawnOverrides(t *testing.T) {
	cfg := testConfig(t)
	cfg.Enemies = []config.SpawnConfig{
		{X: 3.5, Y: 1.5, Life: 200},
		{X: 13.5, Y: 4.5, Damage: 20},
	}

	g, err := New(&fakeDriver{}, cfg, world.DefaultLevel(), nil)
	require.NoError(t, err)
	require.Len(t, g.Enemies(), 2)

	first, second := g.Enemies()[0], g.Enemies()[1]
	assert.Equal(t, 200, first.Life())
	assert.Equal(t, 100, second.Life(), "unset life keeps the soldier default")
	assert.NotEqual(t, first.ID(), second.ID())

	g.Player().Position = world.NewPos(13.5, 5.5)
	start := first.Pos()
	events := g.Update()

	require.Len(t, events, 1)
	attack, ok := events[0].(model.AttackEvent)
	require.True(t, ok)
	assert.Equal(t, second.ID(), attack.Enemy)
	assert.Equal(t, 20, attack.Damage)

	// the first spawn only overrode life, so it walks at the default speed
	assert.InDelta(t, model.DefaultEnemyStats().Speed, first.Pos().Sub(start).Len(), 1e-9)
}

func TestSpawnInsideWall(t *testing.T) {
	cfg := testConfig(t)
	cfg.Enemies = []config.SpawnConfig{{X: 0.5, Y: 0.5}}

	_, err := New(&fakeDriver{}, cfg, world.DefaultLevel(), nil)
	assert.ErrorIs(t, err, ErrInvalidSpawn)
}

func TestLevelMarkersOverrideConfig(t *testing.T) {
	level, err := world.ParseLevel("markers", []string{
		"WWWWWW",
		"WPFFFW",
		"WFFFEW",
		"WFEFFW",
		"WWWWWW",
	})
	require.NoError(t, err)

	g, err := New(&fakeDriver{}, testConfig(t), level, nil)
	require.NoError(t, err)

	assert.Equal(t, world.NewPos(1.5, 1.5), g.Player().Pos())
	require.Len(t, g.Enemies(), 2)
	assert.Equal(t, world.NewPos(4.5, 2.5), g.Enemies()[0].Pos())
	assert.Equal(t, world.NewPos(2.5, 3.5), g.Enemies()[1].Pos())
}

func TestTickQuit(t *testing.T) {
	g, d := newTestGame(t)
	d.inputs = []engine.Input{{Kind: engine.Quit}, {Kind: engine.MoveForward}}

	assert.True(t, g.Tick(16))
	assert.Empty(t, d.frames)
	assert.Len(t, d.inputs, 1)
}

func TestTickTakesOneInput(t *testing.T) {
	g, d := newTestGame(t)
	d.inputs = []engine.Input{{Kind: engine.MoveForward}, {Kind: engine.MoveForward}}

	assert.False(t, g.Tick(60))
	assert.Len(t, d.inputs, 1)
	assert.InDelta(t, 1.74, g.Player().Pos().X, 1e-9)
	assert.Len(t, d.frames, 1)

	assert.False(t, g.Tick(60))
	assert.Empty(t, d.inputs)
	assert.InDelta(t, 1.98, g.Player().Pos().X, 1e-9)
	assert.Len(t, d.frames, 2)
}

func TestFrameComposition(t *testing.T) {
	g, d := newTestGame(t)
	require.False(t, g.Tick(16))

	frame := d.lastFrame()
	_, ok := frame[0].(engine.Background)
	require.True(t, ok)

	assert.Equal(t, g.Scene().Camera.NumRays(), countKind[engine.Column](frame))
	assert.Equal(t, 1, countKind[engine.WeaponOverlay](frame))
	assert.Equal(t, 1, countKind[engine.LifeCounter](frame))
	assert.Equal(t, 1, countKind[engine.Crosshair](frame))
	assert.Zero(t, countKind[engine.PainFlash](frame))
	assert.Zero(t, countKind[engine.GameOver](frame))
	assert.Equal(t, 1, countKind[engine.Minimap](frame))

	for i := 1; i < len(frame); i++ {
		assert.GreaterOrEqual(t, frame[i-1].Depth(), frame[i].Depth())
	}
	assert.True(t, math.IsInf(frame[len(frame)-1].Depth(), -1))
}

func TestMinimap(t *testing.T) {
	g, _ := newTestGame(t)
	grid := g.Scene().Grid

	m := g.Minimap()
	assert.Equal(t, grid.Width(), m.Width)
	assert.Equal(t, grid.Height(), m.Height)
	require.Len(t, m.Walls, m.Width*m.Height)
	assert.True(t, m.Walls[0])
	assert.False(t, m.Walls[5*m.Width+1])

	assert.Equal(t, engine.Mark{X: 1.5, Y: 5.0, Alive: true}, m.Player)
	assert.Equal(t, []engine.Mark{{X: 10.5, Y: 3.5, Alive: true}}, m.Enemies)
}

func TestMinimapDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Minimap = false
	d := &fakeDriver{}
	g, err := New(d, cfg, world.DefaultLevel(), nil)
	require.NoError(t, err)

	require.False(t, g.Tick(16))
	assert.Zero(t, countKind[engine.Minimap](d.lastFrame()))
}

func TestEnemyBillboardInFrame(t *testing.T) {
	g, d := newTestGame(t)
	enemy := g.Enemies()[0]
	player := g.Player()

	player.Position = world.NewPos(8.5, 6.5)
	d0 := enemy.Pos().Sub(player.Pos())
	player.Spin(math.Atan2(d0.Y, d0.X))

	require.False(t, g.Tick(16))
	require.Equal(t, 1, countKind[engine.Billboard](d.lastFrame()))
}

func TestShootKillsEnemy(t *testing.T) {
	g, d := newTestGame(t)
	enemy := g.Enemies()[0]
	player := g.Player()

	player.Position = world.NewPos(8.5, 6.5)
	d0 := enemy.Pos().Sub(player.Pos())
	player.Spin(math.Atan2(d0.Y, d0.X))

	g.Update()
	g.handleInput(engine.Input{Kind: engine.Confirm}, 16)

	assert.Equal(t, []string{"shoot", "enemy_pain"}, d.sounds)
	assert.Equal(t, 50, enemy.Life())
	assert.Equal(t, model.InPain, enemy.State())
	assert.True(t, g.Crosshair().IsHitIndicatorActive())

	// the weapon refuses to fire until it has reloaded
	g.handleInput(engine.Input{Kind: engine.Confirm}, 16)
	assert.Len(t, d.sounds, 2)

	for g.Weapon().State() != model.WeaponIdle {
		g.Weapon().Update()
	}
	g.Update()
	g.handleInput(engine.Input{Kind: engine.Confirm}, 16)

	assert.Equal(t, 0, enemy.Life())
	assert.False(t, enemy.Alive())
	assert.Equal(t, model.Dying, enemy.State())
}

func TestShootMisses(t *testing.T) {
	g, d := newTestGame(t)
	enemy := g.Enemies()[0]

	g.Update()
	g.handleInput(engine.Input{Kind: engine.Confirm}, 16)

	assert.Equal(t, []string{"shoot"}, d.sounds)
	assert.Equal(t, 100, enemy.Life())
	assert.False(t, g.Crosshair().IsHitIndicatorActive())
}

func TestEnemyAttackHurtsPlayer(t *testing.T) {
	g, d := newTestGame(t)
	g.Player().Position = world.NewPos(11.5, 3.5)

	require.False(t, g.Tick(16))

	assert.Equal(t, []string{"enemy_attack", "player_pain"}, d.sounds)
	assert.Equal(t, 95, g.Player().Life())
	assert.True(t, g.Player().InPain())
	assert.Equal(t, 1, countKind[engine.PainFlash](d.lastFrame()))
	assert.Contains(t, d.lastFrame(), engine.DrawCommand(engine.LifeCounter{Life: 95}))
}

func TestGameOver(t *testing.T) {
	g, d := newTestGame(t)
	g.Player().Hurt(1000)

	require.False(t, g.Tick(16))
	assert.True(t, g.Over())
	assert.Equal(t, 1, countKind[engine.GameOver](d.lastFrame()))

	pos := g.Player().Pos()
	d.inputs = []engine.Input{{Kind: engine.MoveForward}}
	require.False(t, g.Tick(16))
	assert.Equal(t, pos, g.Player().Pos())

	d.inputs = []engine.Input{{Kind: engine.Quit}}
	assert.True(t, g.Tick(16))
}

func TestMouseSpin(t *testing.T) {
	g, d := newTestGame(t)

	g.handleInput(engine.Input{Kind: engine.MouseDelta, X: 800, XRel: 10}, 16)
	assert.InDelta(t, 10*0.0003*16, g.Player().Angle, 1e-9)
	assert.Zero(t, d.centered)

	g.handleInput(engine.Input{Kind: engine.MouseDelta, X: 1550, XRel: 500}, 16)
	assert.InDelta(t, 50*0.0003*16, g.Player().Angle, 1e-9)
	assert.Equal(t, 1, d.centered)
}

func TestRunStopsOnQuit(t *testing.T) {
	g, d := newTestGame(t)
	d.inputs = []engine.Input{{Kind: engine.StrafeLeft}}

	ticks := 0
	quitAfter := 3
	loop := &quitDriver{fakeDriver: d, after: quitAfter, ticks: &ticks}
	g.driver = loop

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, quitAfter, ticks)
	assert.Len(t, d.frames, quitAfter-1)
}

func TestRunCancelled(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
}

// quitDriver injects a Quit input on the given tick.
type quitDriver struct {
	*fakeDriver
	after int
	ticks *int
}

func (q *quitDriver) ElapsedTime() float64 {
	*q.ticks++
	if *q.ticks == q.after {
		q.inputs = append(q.inputs, engine.Input{Kind: engine.Quit})
	}
	return 16
}

func (q *quitDriver) Loop(ctx context.Context, step func() bool) error {
	return q.fakeDriver.Loop(ctx, step)
}
