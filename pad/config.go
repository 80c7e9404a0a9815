package pad

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"padkit/log"
)

// Duration wraps time.Duration so that it round-trips through toml as a
// human-readable string ("220ms").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	dd, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

type StickConfig struct {
	// Radial deadzone: stick magnitude must exceed this to register.
	Deadzone float64 `toml:"deadzone"`
	// Per-axis threshold applied after the deadzone passes. Lower than
	// the deadzone so diagonals are easier to hit.
	DirectionThreshold float64 `toml:"direction_threshold"`
}

type TriggerConfig struct {
	// Normalized trigger value (0..1) required to count as pressed.
	Threshold float64 `toml:"threshold"`
}

type RepeatConfig struct {
	MoveDelay      Duration `toml:"move_delay"`
	MoveInterval   Duration `toml:"move_interval"`
	CursorDelay    Duration `toml:"cursor_delay"`
	CursorInterval Duration `toml:"cursor_interval"`

	// Minimum gap between any two direction events from the same
	// repeater. Absorbs stick bounce through neutral and jitter
	// between adjacent directions.
	Debounce Duration `toml:"debounce"`
}

// ButtonConfig holds the button indices of the auto-detected layout
// (SDL/XInput convention for a standard Xbox-style pad).
type ButtonConfig struct {
	A      int `toml:"a"`
	B      int `toml:"b"`
	X      int `toml:"x"`
	Y      int `toml:"y"`
	LB     int `toml:"lb"`
	RB     int `toml:"rb"`
	Back   int `toml:"back"`
	Start  int `toml:"start"`
	LStick int `toml:"lstick"`
	RStick int `toml:"rstick"`
}

type Config struct {
	Stick   StickConfig   `toml:"stick"`
	Trigger TriggerConfig `toml:"trigger"`
	Repeat  RepeatConfig  `toml:"repeat"`
	Buttons ButtonConfig  `toml:"buttons"`
}

var DefaultConfig = Config{
	Stick: StickConfig{
		Deadzone:           0.25,
		DirectionThreshold: 0.15,
	},
	Trigger: TriggerConfig{
		Threshold: 0.3,
	},
	Repeat: RepeatConfig{
		MoveDelay:      Duration(220 * time.Millisecond),
		MoveInterval:   Duration(120 * time.Millisecond),
		CursorDelay:    Duration(300 * time.Millisecond),
		CursorInterval: Duration(100 * time.Millisecond),
		Debounce:       Duration(70 * time.Millisecond),
	},
	Buttons: ButtonConfig{
		A:      0,
		B:      1,
		X:      2,
		Y:      3,
		LB:     4,
		RB:     5,
		Back:   6,
		Start:  7,
		LStick: 8,
		RStick: 9,
	},
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("padkit")
	if err := configdir.MakePath(dir); err != nil {
		log.ModPad.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the padkit config
// directory, or provides the default one.
func LoadConfigOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg)
	if err != nil {
		return DefaultConfig
	}
	return cfg
}

// SaveConfig into the padkit config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
