package engine

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrUnknownTexture is returned when a driver has no metrics for an id.
var ErrUnknownTexture = errors.New("unknown texture")

// TextureID names every image the game can ask a driver to draw.
type TextureID int

const (
	TextureWall TextureID = iota

	TextureWeaponIdle
	TextureWeaponShoot
	TextureWeaponReload1
	TextureWeaponReload2
	TextureWeaponReload3
	TextureWeaponReload4

	TextureSoldierAlive1
	TextureSoldierAlive2
	TextureSoldierAlive3
	TextureSoldierAlive4
	TextureSoldierAlive5
	TextureSoldierAlive6
	TextureSoldierAlive7
	TextureSoldierAlive8

	TextureSoldierPain

	TextureSoldierDead1
	TextureSoldierDead2
	TextureSoldierDead3
	TextureSoldierDead4
	TextureSoldierDead5
	TextureSoldierDead6
	TextureSoldierDead7
	TextureSoldierDead8

	TextureSoldierWalking1
	TextureSoldierWalking2
	TextureSoldierWalking3
	TextureSoldierWalking4

	TextureSoldierShooting1
	TextureSoldierShooting2

	TexturePainScreen
	TextureGameOver

	TextureDigit0
	TextureDigit1
	TextureDigit2
	TextureDigit3
	TextureDigit4
	TextureDigit5
	TextureDigit6
	TextureDigit7
	TextureDigit8
	TextureDigit9

	textureCount
)

var textureNames = [textureCount]string{
	TextureWall:             "wall",
	TextureWeaponIdle:       "weapon_idle",
	TextureWeaponShoot:      "weapon_shoot",
	TextureWeaponReload1:    "weapon_reload_1",
	TextureWeaponReload2:    "weapon_reload_2",
	TextureWeaponReload3:    "weapon_reload_3",
	TextureWeaponReload4:    "weapon_reload_4",
	TextureSoldierAlive1:    "soldier_alive_1",
	TextureSoldierAlive2:    "soldier_alive_2",
	TextureSoldierAlive3:    "soldier_alive_3",
	TextureSoldierAlive4:    "soldier_alive_4",
	TextureSoldierAlive5:    "soldier_alive_5",
	TextureSoldierAlive6:    "soldier_alive_6",
	TextureSoldierAlive7:    "soldier_alive_7",
	TextureSoldierAlive8:    "soldier_alive_8",
	TextureSoldierPain:      "soldier_pain",
	TextureSoldierDead1:     "soldier_dead_1",
	TextureSoldierDead2:     "soldier_dead_2",
	TextureSoldierDead3:     "soldier_dead_3",
	TextureSoldierDead4:     "soldier_dead_4",
	TextureSoldierDead5:     "soldier_dead_5",
	TextureSoldierDead6:     "soldier_dead_6",
	TextureSoldierDead7:     "soldier_dead_7",
	TextureSoldierDead8:     "soldier_dead_8",
	TextureSoldierWalking1:  "soldier_walking_1",
	TextureSoldierWalking2:  "soldier_walking_2",
	TextureSoldierWalking3:  "soldier_walking_3",
	TextureSoldierWalking4:  "soldier_walking_4",
	TextureSoldierShooting1: "soldier_shooting_1",
	TextureSoldierShooting2: "soldier_shooting_2",
	TexturePainScreen:       "pain_screen",
	TextureGameOver:         "game_over",
	TextureDigit0:           "digit_0",
	TextureDigit1:           "digit_1",
	TextureDigit2:           "digit_2",
	TextureDigit3:           "digit_3",
	TextureDigit4:           "digit_4",
	TextureDigit5:           "digit_5",
	TextureDigit6:           "digit_6",
	TextureDigit7:           "digit_7",
	TextureDigit8:           "digit_8",
	TextureDigit9:           "digit_9",
}

func (id TextureID) String() string {
	if id < 0 || id >= textureCount {
		return "texture(" + strconv.Itoa(int(id)) + ")"
	}
	return textureNames[id]
}

// TextureIDs lists every known id in declaration order.
func TextureIDs() []TextureID {
	ids := make([]TextureID, textureCount)
	for i := range ids {
		ids[i] = TextureID(i)
	}
	return ids
}

// ParseTextureID is the inverse of String.
func ParseTextureID(name string) (TextureID, error) {
	for i, n := range textureNames {
		if n == name {
			return TextureID(i), nil
		}
	}
	return 0, errors.Wrap(ErrUnknownTexture, name)
}

// Digits maps a non negative number to the digit textures that spell it.
func Digits(n int) []TextureID {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	ids := make([]TextureID, len(s))
	for i, r := range s {
		ids[i] = TextureDigit0 + TextureID(r-'0')
	}
	return ids
}

// TextureRef carries the metrics the core needs for projection. Pixels stay
// with the driver.
type TextureRef struct {
	ID    TextureID
	Width int
	Ratio float64
}
