package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridshooter/config"
	"gridshooter/world"
)

func TestLoadLevel(t *testing.T) {
	level, err := loadLevel("")
	require.NoError(t, err)
	assert.Equal(t, world.DefaultLevel().Grid.String(), level.Grid.String())

	path := filepath.Join(t.TempDir(), "box.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: box\nrows:\n  - WWW\n  - WPW\n  - WWW\n"), 0o644))
	level, err = loadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "box", level.Name)
	require.NotNil(t, level.PlayerStart)
}

func TestNewLoggerTerminalWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, err := newLogger(&config.Config{Driver: "terminal", LogFile: path})
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestRunHelp(t *testing.T) {
	assert.NoError(t, run([]string{"--help"}))
}
