package ebiten

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMouseVirtualX(t *testing.T) {
	m := newMouse(1600)

	_, _, moved := m.update(300)
	assert.False(t, moved, "first sample only sets the origin")

	x, rel, moved := m.update(320)
	assert.True(t, moved)
	assert.Equal(t, 20, rel)
	assert.Equal(t, 820, x)

	_, _, moved = m.update(320)
	assert.False(t, moved)

	x, rel, _ = m.update(-500)
	assert.Equal(t, -820, rel)
	assert.Equal(t, 0, x)

	m.center(800)
	x, rel, _ = m.update(-490)
	assert.Equal(t, 10, rel)
	assert.Equal(t, 810, x)
}
