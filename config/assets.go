package config

import (
	"math"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"gridshooter/engine"
)

// DefaultTextures maps texture names to files under the asset root.
func DefaultTextures() map[string]string {
	paths := map[engine.TextureID]string{
		engine.TextureWall:          "textures/1.png",
		engine.TextureWeaponIdle:    "sprites/weapon/shotgun/0.png",
		engine.TextureWeaponShoot:   "sprites/weapon/shotgun/1.png",
		engine.TextureWeaponReload1: "sprites/weapon/shotgun/2.png",
		engine.TextureWeaponReload2: "sprites/weapon/shotgun/3.png",
		engine.TextureWeaponReload3: "sprites/weapon/shotgun/4.png",
		engine.TextureWeaponReload4: "sprites/weapon/shotgun/5.png",
		engine.TextureSoldierPain:   "sprites/npc/soldier/pain/0.png",
		engine.TexturePainScreen:    "textures/blood_screen.png",
		engine.TextureGameOver:      "textures/game_over.png",
	}

	frames := func(first engine.TextureID, n int, dir string) {
		for i := 0; i < n; i++ {
			paths[first+engine.TextureID(i)] = "sprites/npc/soldier/" + dir + "/" + strconv.Itoa(i) + ".png"
		}
	}
	frames(engine.TextureSoldierAlive1, 8, "idle")
	frames(engine.TextureSoldierDead1, 8, "death")
	frames(engine.TextureSoldierWalking1, 4, "walk")
	frames(engine.TextureSoldierShooting1, 2, "attack")

	for i := 0; i < 10; i++ {
		paths[engine.TextureDigit0+engine.TextureID(i)] = "textures/digits/" + strconv.Itoa(i) + ".png"
	}

	out := make(map[string]string, len(paths))
	for id, path := range paths {
		out[id.String()] = path
	}
	return out
}

// TexturePaths resolves every known texture against the asset root.
func (c *Config) TexturePaths() (map[engine.TextureID]string, error) {
	out := make(map[engine.TextureID]string, len(c.Textures))
	for _, id := range engine.TextureIDs() {
		path, ok := c.Textures[id.String()]
		if !ok || path == "" {
			return nil, errors.Wrapf(engine.ErrUnknownTexture, "no file for %s", id)
		}
		out[id] = c.resolve(path)
	}
	return out, nil
}

// SoundPaths returns the sound files in shoot, enemy pain, enemy attack,
// player pain order.
func (c *Config) SoundPaths() [4]string {
	return [4]string{
		c.resolve(c.Sounds.Shoot),
		c.resolve(c.Sounds.EnemyPain),
		c.resolve(c.Sounds.EnemyAttack),
		c.resolve(c.Sounds.PlayerPain),
	}
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Assets, path)
}

// FOVRadians converts the configured field of view.
func (c *Config) FOVRadians() float64 {
	return c.Screen.FOV * math.Pi / 180
}
