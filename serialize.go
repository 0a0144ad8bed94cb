package csscolor

import "gopkg.in/yaml.v3"

// MarshalText implements encoding.TextMarshaler, encoding the color as
// its hex string. encoding/json picks this up automatically, so Color
// fields serialize as JSON strings.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.HexString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by delegating to
// Parse, so any supported color syntax decodes, not just hex.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the color as its hex
// string scalar.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.HexString(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler by running the scalar
// through Parse.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
