package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRIDSHOOTER"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Driver  string `mapstructure:"driver"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
	Level   string `mapstructure:"level"`
	Assets  string `mapstructure:"assets"`
	Minimap bool   `mapstructure:"minimap"`

	Screen   ScreenConfig      `mapstructure:"screen"`
	Player   PlayerConfig      `mapstructure:"player"`
	Mouse    MouseConfig       `mapstructure:"mouse"`
	Weapon   WeaponConfig      `mapstructure:"weapon"`
	Enemies  []SpawnConfig     `mapstructure:"enemies"`
	Textures map[string]string `mapstructure:"textures"`
	Sounds   SoundConfig       `mapstructure:"sounds"`
}

type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	FPS    int `mapstructure:"fps"`
	// FOV is in degrees.
	FOV float64 `mapstructure:"fov"`
}

type PlayerConfig struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Angle float64 `mapstructure:"angle"`
	Speed float64 `mapstructure:"speed"`
	Life  int     `mapstructure:"life"`
}

type MouseConfig struct {
	Sensitivity float64 `mapstructure:"sensitivity"`
	MaxRel      int     `mapstructure:"max_rel"`
	Border      int     `mapstructure:"border"`
}

type WeaponConfig struct {
	Damage int `mapstructure:"damage"`
}

// SpawnConfig places an enemy. Zero stats fall back to the soldier defaults.
type SpawnConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`

	Life      int     `mapstructure:"life"`
	Damage    int     `mapstructure:"damage"`
	Shift     float64 `mapstructure:"shift"`
	Scale     float64 `mapstructure:"scale"`
	Speed     float64 `mapstructure:"speed"`
	Cooldown  int     `mapstructure:"cooldown"`
	HitMargin float64 `mapstructure:"hit_margin"`
}

type SoundConfig struct {
	Shoot       string `mapstructure:"shoot"`
	EnemyPain   string `mapstructure:"enemy_pain"`
	EnemyAttack string `mapstructure:"enemy_attack"`
	PlayerPain  string `mapstructure:"player_pain"`
}

// DefaultSpawns is used when no enemy is configured.
func DefaultSpawns() []SpawnConfig {
	return []SpawnConfig{{X: 10.5, Y: 3.5}}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("driver", "ebiten")
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "gridshooter.log")
	v.SetDefault("level", "")
	v.SetDefault("assets", "assets")
	v.SetDefault("minimap", true)

	v.SetDefault("screen.width", 1600)
	v.SetDefault("screen.height", 900)
	v.SetDefault("screen.fps", 60)
	v.SetDefault("screen.fov", 90.0)

	v.SetDefault("player.x", 1.5)
	v.SetDefault("player.y", 5.0)
	v.SetDefault("player.angle", 0.0)
	v.SetDefault("player.speed", 0.004)
	v.SetDefault("player.life", 100)

	v.SetDefault("mouse.sensitivity", 0.0003)
	v.SetDefault("mouse.max_rel", 40)
	v.SetDefault("mouse.border", 100)

	v.SetDefault("weapon.damage", 50)

	// one key per texture so a file naming a few of them keeps the rest
	for name, path := range DefaultTextures() {
		v.SetDefault("textures."+name, path)
	}

	v.SetDefault("sounds.shoot", "sound/shotgun.wav")
	v.SetDefault("sounds.enemy_pain", "sound/npc_pain.wav")
	v.SetDefault("sounds.enemy_attack", "sound/npc_attack.wav")
	v.SetDefault("sounds.player_pain", "sound/player_pain.wav")
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gridshooter", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	fs.StringP("driver", "d", "ebiten", "platform driver: ebiten or terminal")
	fs.StringP("level", "l", "", "level file (yaml, png or bmp); empty uses the built-in map")
	fs.String("assets", "assets", "asset root directory")
	fs.Bool("debug", false, "development logging")
	fs.Bool("minimap", true, "draw the overhead map")
	fs.Int("screen.width", 1600, "screen width in pixels")
	fs.Int("screen.height", 900, "screen height in pixels")
	return fs
}

// Load reads defaults, then the config file at path, then GRIDSHOOTER_*
// environment variables, then any flags that were set.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if len(cfg.Enemies) == 0 {
		cfg.Enemies = DefaultSpawns()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Driver != "ebiten" && c.Driver != "terminal":
		return errors.Wrapf(ErrInvalidConfig, "unknown driver %q", c.Driver)
	case c.Screen.Width < 2 || c.Screen.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "screen %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Screen.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "fps %d", c.Screen.FPS)
	case c.Screen.FOV <= 0 || c.Screen.FOV >= 180:
		return errors.Wrapf(ErrInvalidConfig, "fov %v", c.Screen.FOV)
	case c.Player.Life <= 0:
		return errors.Wrapf(ErrInvalidConfig, "player life %d", c.Player.Life)
	}
	return nil
}
