package ebiten

import (
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const sampleRate = 44100

const (
	soundShoot = iota
	soundEnemyPain
	soundEnemyAttack
	soundPlayerPain
)

// soundBank keeps one player per cue. A missing file leaves its cue silent.
type soundBank struct {
	log     *zap.Logger
	players [4]*audio.Player
}

func newSoundBank(paths [4]string, logger *zap.Logger) (*soundBank, error) {
	ctx := audio.NewContext(sampleRate)
	bank := &soundBank{log: logger}

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := loadWAV(path)
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("sound missing", zap.String("path", path))
			continue
		}
		if err != nil {
			return nil, err
		}
		bank.players[i] = ctx.NewPlayerFromBytes(data)
	}
	return bank, nil
}

func loadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

func (s *soundBank) play(cue int) {
	p := s.players[cue]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		s.log.Warn("rewind sound", zap.Int("cue", cue), zap.Error(err))
		return
	}
	p.Play()
}

func (d *Driver) PlayShoot()       { d.sounds.play(soundShoot) }
func (d *Driver) PlayEnemyPain()   { d.sounds.play(soundEnemyPain) }
func (d *Driver) PlayEnemyAttack() { d.sounds.play(soundEnemyAttack) }
func (d *Driver) PlayPlayerPain()  { d.sounds.play(soundPlayerPain) }
