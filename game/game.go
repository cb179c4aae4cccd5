package game

import (
	"context"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gridshooter/config"
	"gridshooter/engine"
	"gridshooter/model"
	"gridshooter/raycast"
	"gridshooter/world"
)

// hitIndicatorTicks is how long the crosshair flags a confirmed hit.
const hitIndicatorTicks = 30

var ErrInvalidSpawn = errors.New("invalid spawn")

// Game owns the simulation and talks to the platform only through the
// driver.
type Game struct {
	driver engine.Driver
	cfg    *config.Config
	log    *zap.Logger

	scene     *model.Scene
	player    *model.Player
	weapon    *model.Weapon
	crosshair *model.Crosshair
	enemies   []*model.Enemy

	// walls is the static part of the minimap, built once per level.
	walls []bool
	over  bool
}

func New(driver engine.Driver, cfg *config.Config, level *world.Level, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Game{
		driver:    driver,
		cfg:       cfg,
		log:       logger,
		crosshair: model.NewCrosshair(hitIndicatorTicks),
	}

	camera := raycast.NewCamera(cfg.Screen.Width, cfg.Screen.Height, cfg.FOVRadians())
	g.scene = model.NewScene(level.Grid, camera)
	g.walls = wallMask(level.Grid)

	start := world.NewPos(cfg.Player.X, cfg.Player.Y)
	if level.PlayerStart != nil {
		start = *level.PlayerStart
	}
	if level.Grid.IsWall(start.Cell()) {
		return nil, errors.Wrapf(ErrInvalidSpawn, "player at %v is inside a wall", start.Cell())
	}
	g.player = model.NewPlayer(start.X, start.Y, cfg.Player.Angle, cfg.Player.Speed, cfg.Player.Life)

	shoot, err := driver.LoadTextureRefs(weaponShooting...)
	if err != nil {
		return nil, errors.Wrap(err, "load weapon textures")
	}
	reload, err := driver.LoadTextureRefs(weaponReloading...)
	if err != nil {
		return nil, errors.Wrap(err, "load weapon textures")
	}
	g.weapon = model.NewWeapon(engine.TextureWeaponIdle, shoot, reload, cfg.Weapon.Damage, cfg.Screen.FPS)

	seq, err := g.soldierSequences()
	if err != nil {
		return nil, err
	}

	spawns := cfg.Enemies
	if len(level.Spawns) > 0 {
		spawns = make([]config.SpawnConfig, len(level.Spawns))
		for i, pos := range level.Spawns {
			spawns[i] = config.SpawnConfig{X: pos.X, Y: pos.Y}
		}
	}

	for _, spawn := range spawns {
		pos := world.NewPos(spawn.X, spawn.Y)
		if level.Grid.IsWall(pos.Cell()) {
			return nil, errors.Wrapf(ErrInvalidSpawn, "enemy at %v is inside a wall", pos.Cell())
		}

		stats := model.DefaultEnemyStats()
		if err := copier.CopyWithOption(&stats, &spawn, copier.Option{IgnoreEmpty: true}); err != nil {
			return nil, errors.Wrap(err, "merge enemy stats")
		}

		enemy := model.NewEnemy(pos, stats, seq.Clone(), g.scene)
		g.enemies = append(g.enemies, enemy)

		g.log.Debug("enemy spawned",
			zap.Stringer("id", enemy.ID()),
			zap.Float64("x", pos.X),
			zap.Float64("y", pos.Y),
			zap.Int("life", stats.Life),
		)
	}

	g.log.Info("game ready",
		zap.String("level", level.Name),
		zap.Int("enemies", len(g.enemies)),
		zap.Int("rays", camera.NumRays()),
	)

	return g, nil
}

func (g *Game) soldierSequences() (model.EnemySequence, error) {
	var lists [4][]engine.TextureRef
	for i, ids := range [4][]engine.TextureID{soldierWalking, soldierShooting, soldierPain, soldierDying} {
		refs, err := g.driver.LoadTextureRefs(ids...)
		if err != nil {
			return model.EnemySequence{}, errors.Wrap(err, "load soldier textures")
		}
		lists[i] = refs
	}
	return model.NewEnemySequence(lists[0], lists[1], lists[2], lists[3], g.cfg.Screen.FPS), nil
}

func (g *Game) Player() *model.Player       { return g.player }
func (g *Game) Enemies() []*model.Enemy     { return g.enemies }
func (g *Game) Over() bool                  { return g.over }
func (g *Game) Scene() *model.Scene         { return g.scene }
func (g *Game) Weapon() *model.Weapon       { return g.weapon }
func (g *Game) Crosshair() *model.Crosshair { return g.crosshair }

// Run hands the frame loop to the driver and returns once the player quits.
func (g *Game) Run(ctx context.Context) error {
	g.log.Info("game started")
	err := g.driver.Loop(ctx, func() bool {
		return g.Tick(g.driver.ElapsedTime())
	})
	g.log.Info("game stopped", zap.Bool("over", g.over), zap.Int("life", g.player.Life()))
	return err
}

// Tick runs one frame: at most one input, the simulation, event handling
// and rendering. It returns true when the player asked to quit.
func (g *Game) Tick(dt float64) bool {
	if in, ok := g.driver.Poll(); ok && g.handleInput(in, dt) {
		return true
	}

	g.handleEvents(g.Update())
	g.driver.Render(g.Commands())

	return false
}

// Update advances every entity one tick. Enemies see each other only through
// the snapshot taken before any of them moves.
func (g *Game) Update() []model.Event {
	if g.over {
		return nil
	}

	var events []model.Event
	if !g.player.Alive() {
		events = append(events, model.GameOverEvent{})
	}

	snap := model.TakeSnapshot(g.enemies)
	for _, enemy := range g.enemies {
		if ev := enemy.Update(g.player, snap); ev != nil {
			events = append(events, ev)
		}
	}

	g.weapon.Update()
	g.player.Update()
	g.crosshair.Update()

	return events
}

func (g *Game) handleEvents(events []model.Event) {
	for _, event := range events {
		switch ev := event.(type) {
		case model.AttackEvent:
			g.driver.PlayEnemyAttack()
			g.driver.PlayPlayerPain()
			g.player.Hurt(ev.Damage)
			g.log.Debug("player hit",
				zap.Stringer("enemy", ev.Enemy),
				zap.Int("damage", ev.Damage),
				zap.Int("life", g.player.Life()),
			)
		case model.GameOverEvent:
			if !g.over {
				g.over = true
				g.log.Info("game over")
			}
		}
	}
}

func (g *Game) handleInput(in engine.Input, dt float64) bool {
	if in.Kind == engine.Quit {
		return true
	}
	if g.over {
		return false
	}

	switch in.Kind {
	case engine.MoveForward:
		g.player.Walk(g.scene.Grid, model.North, dt)
	case engine.MoveBack:
		g.player.Walk(g.scene.Grid, model.South, dt)
	case engine.StrafeLeft:
		g.player.Walk(g.scene.Grid, model.West, dt)
	case engine.StrafeRight:
		g.player.Walk(g.scene.Grid, model.East, dt)
	case engine.Confirm:
		g.shoot()
	case engine.MouseDelta:
		g.spinCamera(in.X, in.XRel, dt)
	}
	return false
}

func (g *Game) spinCamera(x, xrel int, dt float64) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	if x < g.cfg.Mouse.Border || x > w-g.cfg.Mouse.Border {
		g.driver.CenterMouse(w/2, h/2)
	}

	limit := float64(g.cfg.Mouse.MaxRel)
	rel := geom.Clamp(float64(xrel), -limit, limit)

	g.player.Spin(rel * g.cfg.Mouse.Sensitivity * dt)
}

func (g *Game) shoot() {
	if !g.weapon.Shoot() {
		return
	}
	g.driver.PlayShoot()

	for _, enemy := range g.enemies {
		if !enemy.Alive() || !enemy.Hit(g.player) {
			continue
		}

		g.driver.PlayEnemyPain()
		enemy.Damage(g.weapon.Damage())
		g.crosshair.ActivateHitIndicator()

		g.log.Debug("enemy hit",
			zap.Stringer("id", enemy.ID()),
			zap.Int("life", enemy.Life()),
			zap.Stringer("state", enemy.State()),
		)
		if !enemy.Alive() {
			g.log.Info("enemy killed", zap.Stringer("id", enemy.ID()))
		}
	}
}

// Commands composes the frame farthest first.
func (g *Game) Commands() []engine.DrawCommand {
	commands := []engine.DrawCommand{engine.Background{}}
	commands = append(commands, g.scene.Camera.Project(g.scene.Grid, g.player.Pos(), g.player.Angle)...)

	for _, enemy := range g.enemies {
		if enemy.Visible() {
			commands = append(commands, enemy.Billboard())
		}
	}

	commands = append(commands, g.weapon.Command(), g.crosshair.Command())
	commands = append(commands, g.player.Commands()...)
	if g.cfg.Minimap {
		commands = append(commands, g.Minimap())
	}
	if g.over {
		commands = append(commands, engine.GameOver{})
	}

	engine.SortByDepth(commands)
	return commands
}

// Minimap marks the player and every enemy over the level walls.
func (g *Game) Minimap() engine.Minimap {
	grid := g.scene.Grid
	pos := g.player.Pos()
	m := engine.Minimap{
		Width:   grid.Width(),
		Height:  grid.Height(),
		Walls:   g.walls,
		Player:  engine.Mark{X: pos.X, Y: pos.Y, Alive: g.player.Alive()},
		Angle:   g.player.Angle,
		Enemies: make([]engine.Mark, 0, len(g.enemies)),
	}
	for _, enemy := range g.enemies {
		p := enemy.Pos()
		m.Enemies = append(m.Enemies, engine.Mark{X: p.X, Y: p.Y, Alive: enemy.Alive()})
	}
	return m
}

func wallMask(grid *world.Grid) []bool {
	walls := make([]bool, grid.Width()*grid.Height())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			walls[y*grid.Width()+x] = grid.IsWall(world.Cell{X: x, Y: y})
		}
	}
	return walls
}
