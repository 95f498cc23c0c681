package pendulum

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Setting names an editable node parameter.
type Setting string

const (
	SettingLength          Setting = "length"
	SettingLengthAmplitude Setting = "length_amplitude"
	SettingLengthFrequency Setting = "length_frequency"
	SettingWidth           Setting = "width"
	SettingWidthAmplitude  Setting = "width_amplitude"
	SettingWidthFrequency  Setting = "width_frequency"
	SettingRotationSpeed   Setting = "rotation_speed"
	SettingInitialAngle    Setting = "initial_angle"
	SettingColorFrequency  Setting = "color_frequency"
	SettingClockwise       Setting = "clockwise"
	SettingNestedRotation  Setting = "nested_rotation"
	SettingDummy           Setting = "dummy"
)

// settingKind tells whether a setting holds a number or a flag.
type settingKind uint8

const (
	kindFloat settingKind = iota
	kindBool
)

type settingDef struct {
	kind    settingKind
	getNum  func(n *Node) float64
	setNum  func(n *Node, v float64) error
	getFlag func(n *Node) bool
	setFlag func(n *Node, v bool)
}

func nonNegative(s Setting, v float64) error {
	if v < 0 {
		return errors.Errorf("setting %s: value %v must be >= 0", s, v)
	}
	return nil
}

// settings maps each Setting to its typed accessors.
var settings = map[Setting]settingDef{
	SettingLength: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Length.Base },
		setNum: func(n *Node, v float64) error { n.Length.Base = v; return nil },
	},
	SettingLengthAmplitude: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Length.Amplitude },
		setNum: func(n *Node, v float64) error { n.Length.Amplitude = v; return nil },
	},
	SettingLengthFrequency: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Length.Frequency },
		setNum: func(n *Node, v float64) error {
			if err := nonNegative(SettingLengthFrequency, v); err != nil {
				return err
			}
			n.Length.Frequency = v
			return nil
		},
	},
	SettingWidth: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Width.Base },
		setNum: func(n *Node, v float64) error { n.Width.Base = v; return nil },
	},
	SettingWidthAmplitude: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Width.Amplitude },
		setNum: func(n *Node, v float64) error { n.Width.Amplitude = v; return nil },
	},
	SettingWidthFrequency: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Width.Frequency },
		setNum: func(n *Node, v float64) error {
			if err := nonNegative(SettingWidthFrequency, v); err != nil {
				return err
			}
			n.Width.Frequency = v
			return nil
		},
	},
	SettingRotationSpeed: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.RotationSpeed },
		setNum: func(n *Node, v float64) error { n.RotationSpeed = v; return nil },
	},
	SettingInitialAngle: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.InitialAngle },
		setNum: func(n *Node, v float64) error { n.InitialAngle = v; return nil },
	},
	SettingColorFrequency: {
		kind:   kindFloat,
		getNum: func(n *Node) float64 { return n.Color.Frequency },
		setNum: func(n *Node, v float64) error {
			if err := nonNegative(SettingColorFrequency, v); err != nil {
				return err
			}
			if v > 0 && n.Color.rng == nil {
				return errors.Errorf("setting %s: node %q has no random source to cycle colors", SettingColorFrequency, n.Name)
			}
			n.Color.Frequency = v
			if n.Color.Timer >= v {
				n.Color.Timer = 0
			}
			return nil
		},
	},
	SettingClockwise: {
		kind:    kindBool,
		getFlag: func(n *Node) bool { return n.Clockwise },
		setFlag: func(n *Node, v bool) { n.Clockwise = v },
	},
	SettingNestedRotation: {
		kind:    kindBool,
		getFlag: func(n *Node) bool { return n.NestedRotation },
		setFlag: func(n *Node, v bool) { n.NestedRotation = v },
	},
	SettingDummy: {
		kind:    kindBool,
		getFlag: func(n *Node) bool { return n.Dummy },
		setFlag: func(n *Node, v bool) { n.Dummy = v },
	},
}

// SettingNames returns every known setting, sorted.
func SettingNames() []Setting {
	names := make([]Setting, 0, len(settings))
	for s := range settings {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func lookupSetting(s Setting) (settingDef, error) {
	def, ok := settings[s]
	if !ok {
		return settingDef{}, errors.Errorf("unknown setting %q", s)
	}
	return def, nil
}

// IsFlag reports whether s is a boolean setting.
func (s Setting) IsFlag() bool {
	def, ok := settings[s]
	return ok && def.kind == kindBool
}

// GetFloat returns a numeric setting.
func (n *Node) GetFloat(s Setting) (float64, error) {
	def, err := lookupSetting(s)
	if err != nil {
		return 0, err
	}
	if def.kind != kindFloat {
		return 0, errors.Errorf("setting %s is a flag, not a number", s)
	}
	return def.getNum(n), nil
}

// SetFloat assigns a numeric setting. Non-finite values are rejected, as are
// negative frequencies.
func (n *Node) SetFloat(s Setting, v float64) error {
	def, err := lookupSetting(s)
	if err != nil {
		return err
	}
	if def.kind != kindFloat {
		return errors.Errorf("setting %s is a flag, not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("setting %s: value %v must be finite", s, v)
	}
	return def.setNum(n, v)
}

// GetFlag returns a boolean setting.
func (n *Node) GetFlag(s Setting) (bool, error) {
	def, err := lookupSetting(s)
	if err != nil {
		return false, err
	}
	if def.kind != kindBool {
		return false, errors.Errorf("setting %s is a number, not a flag", s)
	}
	return def.getFlag(n), nil
}

// SetFlag assigns a boolean setting.
func (n *Node) SetFlag(s Setting, v bool) error {
	def, err := lookupSetting(s)
	if err != nil {
		return err
	}
	if def.kind != kindBool {
		return errors.Errorf("setting %s is a number, not a flag", s)
	}
	def.setFlag(n, v)
	return nil
}
