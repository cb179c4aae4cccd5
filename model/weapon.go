package model

import "gridshooter/engine"

type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponShooting
	WeaponReloading
)

// Weapon cycles idle, shooting and reloading. A new shot is only accepted
// once the reload animation has finished.
type Weapon struct {
	damage int
	state  WeaponState

	idle   engine.TextureID
	shoot  *Sequence
	reload *Sequence
}

func NewWeapon(idle engine.TextureID, shoot, reload []engine.TextureRef, damage, fps int) *Weapon {
	return &Weapon{
		damage: damage,
		idle:   idle,
		shoot:  NewSequence(shoot, fps+30),
		reload: NewSequence(reload, fps+30),
	}
}

func (w *Weapon) Damage() int        { return w.damage }
func (w *Weapon) State() WeaponState { return w.state }

// Shoot fires if the weapon is ready.
func (w *Weapon) Shoot() bool {
	if w.state != WeaponIdle {
		return false
	}
	w.state = WeaponShooting
	return true
}

func (w *Weapon) Update() {
	switch w.state {
	case WeaponShooting:
		if w.shoot.LastFrame() {
			w.state = WeaponReloading
			w.shoot.Reset()
		} else {
			w.shoot.Next()
		}
	case WeaponReloading:
		if w.reload.LastFrame() {
			w.state = WeaponIdle
			w.reload.Reset()
		} else {
			w.reload.Next()
		}
	}
}

func (w *Weapon) Texture() engine.TextureID {
	switch w.state {
	case WeaponShooting:
		return w.shoot.Texture().ID
	case WeaponReloading:
		return w.reload.Texture().ID
	}
	return w.idle
}

func (w *Weapon) Command() engine.DrawCommand {
	return engine.WeaponOverlay{Texture: w.Texture()}
}
