package pendulum

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a scene. It is usually loaded from YAML:
//
//	count: 8
//	speed: 1.5
//	seed: 42
//	background: "#ffffff"
//	policy:
//	  rotation_speed: [5, 25]
//	overrides:
//	  - node: 1
//	    setting: length
//	    value: 180
type Config struct {
	// Count is the number of visible pendulums. Zero picks a random count
	// in [5, 10]. The tree gets one extra dummy root.
	Count int `yaml:"count"`
	// Speed multiplies the wall-clock delta time.
	Speed float64 `yaml:"speed"`
	// Seed seeds the random source. Zero picks a seed from the clock.
	Seed uint64 `yaml:"seed"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background is a hex color like "#fff" or "#1e1e28".
	Background string `yaml:"background"`
	// ClearEachFrame wipes the surface every frame instead of keeping trails.
	ClearEachFrame bool `yaml:"clear_each_frame"`
	// ResumeRamp eases speed changes over this many seconds.
	ResumeRamp float64 `yaml:"resume_ramp"`

	Policy    Policy     `yaml:"policy"`
	Overrides []Override `yaml:"overrides"`

	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Override edits one setting of one node after the tree is generated.
// Node is the pre-order index, 0 being the dummy root.
type Override struct {
	Node    int     `yaml:"node"`
	Setting Setting `yaml:"setting"`
	Value   float64 `yaml:"value"`
	Flag    bool    `yaml:"flag"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Speed:         1,
		Width:         1280,
		Height:        720,
		Background:    "#ffffff",
		Policy:        DefaultPolicy(),
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count %d must be >= 0", c.Count)
	}
	if err := validateSpeed(c.Speed); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("size %dx%d must be positive", c.Width, c.Height)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return errors.Wrap(err, "background")
	}
	if c.ResumeRamp < 0 {
		return errors.Errorf("resume_ramp %v must be >= 0", c.ResumeRamp)
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	for i, o := range c.Overrides {
		if _, err := lookupSetting(o.Setting); err != nil {
			return errors.Wrapf(err, "overrides[%d]", i)
		}
		if o.Node < 0 {
			return errors.Errorf("overrides[%d]: node %d must be >= 0", i, o.Node)
		}
	}
	return nil
}

// BackgroundColor returns the parsed background, falling back to white.
func (c Config) BackgroundColor() RGB {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return ColorWhite
	}
	return bg
}

// ParseColor parses a hex color ("#rgb" or "#rrggbb").
func ParseColor(hex string) (RGB, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "color %q", hex)
	}
	r, g, b := col.RGB255()
	return RGB{r, g, b}, nil
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// UnmarshalYAML accepts either a two-element sequence ([min, max]) or a
// mapping with min and max keys.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.Errorf("line %d: range needs exactly 2 values, got %d", value.Line, len(pair))
		}
		r.Min, r.Max = pair[0], pair[1]
		return nil
	}
	var m struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	}
	m.Min, m.Max = r.Min, r.Max
	if err := value.Decode(&m); err != nil {
		return err
	}
	r.Min, r.Max = m.Min, m.Max
	return nil
}
