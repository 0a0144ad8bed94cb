package csscolor

import (
	"encoding"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

// Verify at compile time that Color implements the marshaling
// interfaces.
var (
	_ encoding.TextMarshaler   = Color{}
	_ encoding.TextUnmarshaler = (*Color)(nil)
	_ yaml.Marshaler           = Color{}
	_ yaml.Unmarshaler         = (*Color)(nil)
)

func TestMarshalText(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"opaque", RGB255(255, 0, 0), "#ff0000"},
		{"with alpha", RGBA(1, 1, 0.5, 0.5), "#ffff8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.c.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("skyblue")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if want := RGB255(135, 206, 235); !colorNear(c, want, 1e-12) {
		t.Errorf("UnmarshalText = %v, want %v", c, want)
	}

	if err := c.UnmarshalText([]byte("no-such-color")); err == nil {
		t.Error("UnmarshalText of invalid input succeeded, want error")
	}
}

func TestJSON(t *testing.T) {
	type theme struct {
		Accent Color `json:"accent"`
	}

	data, err := json.Marshal(theme{Accent: RGB255(52, 152, 219)})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if want := `{"accent":"#3498db"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded theme
	if err := json.Unmarshal([]byte(`{"accent":"rgb(52,152,219)"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if want := RGB255(52, 152, 219); !colorNear(decoded.Accent, want, 1e-9) {
		t.Errorf("Unmarshal = %v, want %v", decoded.Accent, want)
	}

	if err := json.Unmarshal([]byte(`{"accent":"nope"}`), &decoded); err == nil {
		t.Error("Unmarshal of invalid color succeeded, want error")
	}
}

func TestYAML(t *testing.T) {
	type theme struct {
		Accent Color `yaml:"accent"`
		Muted  Color `yaml:"muted"`
	}

	in := theme{
		Accent: RGB255(52, 152, 219),
		Muted:  RGBA(0.5, 0.5, 0.5, 0.25),
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var out theme
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !colorNear(out.Accent, in.Accent, 1e-9) {
		t.Errorf("accent round trip = %v, want %v", out.Accent, in.Accent)
	}
	// Alpha survives through the #rrggbbaa form, quantized to a byte.
	if !colorNear(out.Muted, in.Muted, 1.0/255) {
		t.Errorf("muted round trip = %v, want %v", out.Muted, in.Muted)
	}
}

func TestYAMLAnySyntax(t *testing.T) {
	var decoded struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: hsl(120, 50%, 50%)\n"), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if want := HSL(120, 0.5, 0.5); !colorNear(decoded.C, want, 1e-9) {
		t.Errorf("decoded %v, want %v", decoded.C, want)
	}

	if err := yaml.Unmarshal([]byte("c: [1, 2]\n"), &decoded); err == nil {
		t.Error("Unmarshal of a sequence succeeded, want error")
	}
}
