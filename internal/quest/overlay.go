package quest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is a YAML document of extra objective templates.
type Overlay struct {
	Objectives []Template `yaml:"objectives"`
}

// LoadOverlay reads templates from a YAML overlay file.
func LoadOverlay(path string) ([]Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOverlay(b)
}

// ParseOverlay decodes an overlay document. Chapter defaults to 1.
func ParseOverlay(b []byte) ([]Template, error) {
	var o Overlay
	if err := yaml.Unmarshal(b, &o); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}
	out := make([]Template, 0, len(o.Objectives))
	for _, t := range o.Objectives {
		if t.Chapter == 0 {
			t.Chapter = 1
		}
		if t.Kind == KindChallenge && t.Target == "" {
			t.Target = string(t.Challenge)
		}
		out = append(out, t.Clone())
	}
	return out, nil
}
