package model

import "gridshooter/engine"

// Sequence steps through a list of frames, holding each one for a fixed
// number of ticks.
type Sequence struct {
	textures []engine.TextureRef
	frame    int
	count    int
	hold     int
	blocked  bool
}

// NewSequence panics on an empty texture list; every animation needs at least
// one frame.
func NewSequence(textures []engine.TextureRef, hold int) *Sequence {
	if len(textures) == 0 {
		panic("model: sequence without frames")
	}
	return &Sequence{textures: textures, hold: hold}
}

// Next advances the hold counter and, once it reaches the threshold, the
// frame, wrapping after the last one. A single frame never advances, so its
// counter stays at the threshold and Done reports it.
func (s *Sequence) Next() {
	if s.blocked {
		return
	}

	s.count++
	if s.count < s.hold || len(s.textures) == 1 {
		return
	}
	s.frame = (s.frame + 1) % len(s.textures)
	s.count = 0
}

func (s *Sequence) Reset() {
	s.frame = 0
	s.count = 0
	s.blocked = false
}

// Block freezes the sequence on its current frame until Reset.
func (s *Sequence) Block() {
	s.blocked = true
}

func (s *Sequence) Blocked() bool {
	return s.blocked
}

func (s *Sequence) Done() bool {
	return s.LastFrame() && s.count >= s.hold
}

func (s *Sequence) LastFrame() bool {
	return s.frame == len(s.textures)-1
}

func (s *Sequence) Frame() int {
	return s.frame
}

func (s *Sequence) Texture() engine.TextureRef {
	return s.textures[s.frame]
}

// Clone returns an independent copy sharing the frame list.
func (s *Sequence) Clone() *Sequence {
	c := *s
	return &c
}

// EnemySequence bundles the four animations of an enemy.
type EnemySequence struct {
	Walk  *Sequence
	Shoot *Sequence
	Pain  *Sequence
	Dying *Sequence
}

// NewEnemySequence applies the hold thresholds used for soldiers at the
// given tick rate.
func NewEnemySequence(walk, shoot, pain, dying []engine.TextureRef, fps int) EnemySequence {
	return EnemySequence{
		Walk:  NewSequence(walk, fps*2),
		Shoot: NewSequence(shoot, fps*3),
		Pain:  NewSequence(pain, fps*3),
		Dying: NewSequence(dying, fps),
	}
}

func (e EnemySequence) Clone() EnemySequence {
	return EnemySequence{
		Walk:  e.Walk.Clone(),
		Shoot: e.Shoot.Clone(),
		Pain:  e.Pain.Clone(),
		Dying: e.Dying.Clone(),
	}
}
