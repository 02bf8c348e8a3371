package encode

import (
	"errors"
	"fmt"
)

type Format int

const (
	FFLFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func (f Format) String() string {
	switch f {
	case FFLFormat:
		return "ffl"
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for f.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ".ffl"
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "ffl", "f":
		return FFLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, s)
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	g, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = g
	return nil
}
