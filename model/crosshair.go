package model

import "gridshooter/engine"

// Crosshair flashes a hit indicator for a number of ticks after a shot
// connects.
type Crosshair struct {
	hitTime  int
	hitTimer int
}

func NewCrosshair(hitTime int) *Crosshair {
	return &Crosshair{hitTime: hitTime}
}

func (c *Crosshair) ActivateHitIndicator() {
	c.hitTimer = c.hitTime
}

func (c *Crosshair) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

func (c *Crosshair) Update() {
	if c.hitTimer > 0 {
		c.hitTimer--
	}
}

func (c *Crosshair) Command() engine.DrawCommand {
	return engine.Crosshair{Hit: c.IsHitIndicatorActive()}
}
