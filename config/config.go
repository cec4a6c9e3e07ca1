package config

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

type Config struct {
	TCPAddr     string        `help:"Address of the tcp listener." default:":9999" env:"UNO_TCP_ADDR"`
	WSAddr      string        `help:"Address of the websocket and status listener." name:"ws-addr" default:":9998" env:"UNO_WS_ADDR"`
	PlayTimeout time.Duration `help:"How long a player may think before the server moves for them." default:"40s" env:"UNO_PLAY_TIMEOUT"`
	MaxPlayers  int           `help:"Seats per room." default:"10" env:"UNO_MAX_PLAYERS"`

	ChooseDrawTarget      bool `help:"New rooms let draw cards target any player." env:"UNO_CHOOSE_DRAW_TARGET"`
	TwoPlayerReverseSkips bool `help:"New rooms treat a two player reverse as a skip." env:"UNO_TWO_PLAYER_REVERSE_SKIPS"`
}

func (c *Config) Validate() error {
	if c.MaxPlayers < consts.MinPlayers || c.MaxPlayers > consts.MaxPlayers {
		return fmt.Errorf("max players must be between %d and %d", consts.MinPlayers, consts.MaxPlayers)
	}
	if c.PlayTimeout <= 0 {
		return fmt.Errorf("play timeout must be positive")
	}
	return nil
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		ChooseDrawTarget:      c.ChooseDrawTarget,
		TwoPlayerReverseSkips: c.TwoPlayerReverseSkips,
	}
}

func Default() Config {
	return Config{
		TCPAddr:     ":9999",
		WSAddr:      ":9998",
		PlayTimeout: consts.PlayTimeout,
		MaxPlayers:  consts.MaxPlayers,
	}
}

var current = Default()

// Get returns the configuration the server was started with.
func Get() Config {
	return current
}

func Set(c Config) {
	current = c
}

// Parse reads flags, falling back to the environment and then defaults.
func Parse(args []string, options ...kong.Option) (Config, error) {
	cfg := Config{}
	options = append([]kong.Option{
		kong.Name("uno"),
		kong.Description("an UNO server for ratel clients"),
		kong.UsageOnError(),
	}, options...)
	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return Config{}, err
	}
	if _, err = parser.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is Parse after loading a .env file from the working directory, if
// there is one.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return Parse(args)
}
