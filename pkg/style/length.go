package style

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LengthKind identifies which variant of Length is populated.
type LengthKind int

const (
	// LengthNone is the zero value: the prop was not supplied.
	LengthNone LengthKind = iota
	// LengthPixels is a bare number. Sizes render it as pixels, spacing multiplies it by the scale.
	LengthPixels
	// LengthRaw is a caller-formatted CSS value passed through verbatim.
	LengthRaw
	// LengthToken names a spacing token.
	LengthToken
)

func (k LengthKind) String() string {
	switch k {
	case LengthPixels:
		return "pixels"
	case LengthRaw:
		return "raw"
	case LengthToken:
		return "token"
	default:
		return "none"
	}
}

var numericPattern = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)$`)

// Length is a size or spacing value: a number, a raw CSS string, or a token name.
type Length struct {
	kind LengthKind
	num  float64
	text string
}

// Px returns a numeric Length.
func Px(n float64) Length {
	return Length{kind: LengthPixels, num: n}
}

// Raw returns a Length that is emitted verbatim. An empty string yields the zero Length.
func Raw(s string) Length {
	if s == "" {
		return Length{}
	}
	return Length{kind: LengthRaw, text: s}
}

// Token returns a Length that refers to a spacing token. An empty name yields the zero Length.
func Token(name string) Length {
	if name == "" {
		return Length{}
	}
	return Length{kind: LengthToken, text: name}
}

// ParseLength interprets command-line style input: plain numbers become Px, anything else Raw.
func ParseLength(s string) Length {
	s = strings.TrimSpace(s)
	if numericPattern.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return Px(n)
		}
	}
	return Raw(s)
}

// Kind reports the populated variant.
func (l Length) Kind() LengthKind {
	return l.kind
}

// IsZero reports whether the value is absent.
func (l Length) IsZero() bool {
	return l.kind == LengthNone
}

// emitted reports whether the resolver writes a declaration for l. Like a
// falsy prop, Px(0) and Px(NaN) are skipped.
func (l Length) emitted() bool {
	if l.kind == LengthPixels {
		return l.num != 0 && !math.IsNaN(l.num)
	}
	return l.kind != LengthNone
}

// Pixels returns the numeric value for LengthPixels.
func (l Length) Pixels() (float64, bool) {
	return l.num, l.kind == LengthPixels
}

// String returns the literal form of the value. Token matching is done on this form,
// so Px(8) matches a token named "8".
func (l Length) String() string {
	switch l.kind {
	case LengthPixels:
		return formatNumber(l.num)
	case LengthRaw, LengthToken:
		return l.text
	default:
		return ""
	}
}

// size renders the value for width and height.
func (l Length) size() string {
	if l.kind == LengthPixels {
		return formatNumber(l.num) + "px"
	}
	return l.text
}

// scaled renders the provisional spacing value.
func (l Length) scaled(scale float64) string {
	if l.kind == LengthPixels {
		return formatNumber(l.num*scale) + "px"
	}
	return l.text
}

// UnmarshalYAML accepts numbers, strings, and {token: name} mappings.
func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Tag {
		case "!!null":
			*l = Length{}
		case "!!int", "!!float":
			n, err := strconv.ParseFloat(value.Value, 64)
			if err != nil {
				// hex and other YAML integer spellings ParseFloat rejects
				var i int64
				if decodeErr := value.Decode(&i); decodeErr != nil {
					return fmt.Errorf("line %d: invalid numeric length %q", value.Line, value.Value)
				}
				n = float64(i)
			}
			*l = Px(n)
		default:
			*l = Raw(value.Value)
		}
		return nil
	case yaml.MappingNode:
		var ref struct {
			Token string `yaml:"token"`
		}
		if err := value.Decode(&ref); err != nil {
			return err
		}
		if ref.Token == "" {
			return fmt.Errorf("line %d: length mapping requires a token key", value.Line)
		}
		*l = Token(ref.Token)
		return nil
	default:
		return fmt.Errorf("line %d: length must be a number, a string or {token: name}", value.Line)
	}
}

// MarshalYAML mirrors UnmarshalYAML.
func (l Length) MarshalYAML() (interface{}, error) {
	switch l.kind {
	case LengthPixels:
		return l.num, nil
	case LengthRaw:
		return l.text, nil
	case LengthToken:
		return map[string]string{"token": l.text}, nil
	default:
		return nil, nil
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
