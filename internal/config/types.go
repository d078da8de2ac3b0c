package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a preset document: a named collection of resistors to decode.
type Config struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Settings    Settings   `yaml:"settings,omitempty"`
	Resistors   []Resistor `yaml:"resistors" validate:"required,min=1,dive"`
}

// Settings tune how a document is decoded.
type Settings struct {
	// Bands, when set, requires every resistor to carry that many bands.
	Bands int `yaml:"bands,omitempty" validate:"omitempty,band_count"`
	// StopOnError aborts a batch at the first resistor that fails to decode.
	StopOnError bool `yaml:"stop_on_error,omitempty"`
}

// Resistor is one entry of the document.
type Resistor struct {
	ID    string   `yaml:"id" validate:"required,resistor_id"`
	Label string   `yaml:"label,omitempty" validate:"max=100"`
	Bands []string `yaml:"bands" validate:"required,min=3,max=6,dive,color_name"`
}

// DisplayName returns the label, falling back to the id.
func (r Resistor) DisplayName() string {
	if label := strings.TrimSpace(r.Label); label != "" {
		return label
	}
	return r.ID
}

// UnmarshalYAML accepts bands either as a sequence or as a single string
// of names separated by spaces, commas or dashes ("brown-black-red-gold").
func (r *Resistor) UnmarshalYAML(value *yaml.Node) error {
	type rawResistor struct {
		ID    string    `yaml:"id"`
		Label string    `yaml:"label"`
		Bands yaml.Node `yaml:"bands"`
	}

	var raw rawResistor
	if err := value.Decode(&raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.Label = raw.Label
	r.Bands = nil

	switch raw.Bands.Kind {
	case 0:
		// bands omitted; validation reports it
	case yaml.ScalarNode:
		r.Bands = splitBands(raw.Bands.Value)
	case yaml.SequenceNode:
		if err := raw.Bands.Decode(&r.Bands); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: bands must be a list or a string", raw.Bands.Line)
	}

	return nil
}

func splitBands(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-' || r == '\t'
	})
}
