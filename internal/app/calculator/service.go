package calculator

import (
	"fmt"

	"github.com/alexisbeaulieu97/bandcode/internal/config"
	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
	"github.com/alexisbeaulieu97/bandcode/internal/logger"
)

// Service turns user-supplied color names into reports.
type Service struct {
	log *logger.Logger
}

// NewService constructs a calculator service. A nil logger discards output.
func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{log: log}
}

// Decode infers the band count from the number of colors.
func (s *Service) Decode(colors []string) (Report, error) {
	selection, err := s.parseSelection(colors)
	if err != nil {
		return Report{}, err
	}
	result, err := resistor.DecodeColors(selection)
	return s.finish(len(selection), selection, result, err)
}

// DecodeWithCount decodes colors against the layout for bandCount.
func (s *Service) DecodeWithCount(bandCount int, colors []string) (Report, error) {
	selection, err := s.parseSelection(colors)
	if err != nil {
		return Report{}, err
	}
	return s.DecodeSelection(bandCount, selection)
}

// DecodeSelection decodes an already normalized selection.
func (s *Service) DecodeSelection(bandCount int, selection resistor.Selection) (Report, error) {
	layout, err := resistor.LayoutFor(bandCount)
	if err != nil {
		return s.finish(bandCount, selection, resistor.Result{}, err)
	}
	result, err := resistor.Decode(layout, selection)
	return s.finish(bandCount, selection, result, err)
}

func (s *Service) parseSelection(colors []string) (resistor.Selection, error) {
	selection := make(resistor.Selection, len(colors))
	for i, raw := range colors {
		name, err := resistor.ParseColorName(raw)
		if err != nil {
			s.log.With("position", i+1).Warn(err.Error())
			return nil, err
		}
		selection[i] = name
	}
	return selection, nil
}

func (s *Service) finish(bandCount int, selection resistor.Selection, result resistor.Result, err error) (Report, error) {
	if err != nil {
		s.log.WithFields(map[string]any{"bands": bandCount, "colors": selection}).Warn(err.Error())
		return Report{}, err
	}

	s.log.WithFields(map[string]any{
		"bands":     bandCount,
		"ohms":      result.Ohms,
		"tolerance": result.TolerancePercent,
	}).Debug("decoded resistor")

	return NewReport(selection, result), nil
}

// Entry is the outcome for one resistor of a preset document.
type Entry struct {
	ID     string  `json:"id"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`

	Err error `json:"-"`
}

// Batch collects the entries of one preset document.
type Batch struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
	Failed  int     `json:"failed"`
}

// DecodeConfig decodes every resistor in cfg. Failures are recorded per
// entry unless settings.stop_on_error is set, in which case the first
// failure is returned.
func (s *Service) DecodeConfig(cfg *config.Config) (*Batch, error) {
	if cfg == nil {
		return nil, fmt.Errorf("decode config: nil configuration")
	}

	log := s.log.With("document", cfg.Name)
	batch := &Batch{Name: cfg.Name, Entries: make([]Entry, 0, len(cfg.Resistors))}

	for _, r := range cfg.Resistors {
		entry := Entry{ID: r.ID, Label: r.Label, Name: r.DisplayName()}

		report, err := s.Decode(r.Bands)
		if err != nil {
			if cfg.Settings.StopOnError {
				log.With("resistor", r.ID).Error(err, "batch aborted")
				return nil, fmt.Errorf("resistor %s: %w", r.ID, err)
			}
			entry.Err = err
			entry.Error = err.Error()
			batch.Failed++
		} else {
			entry.Report = &report
		}

		batch.Entries = append(batch.Entries, entry)
	}

	log.WithFields(map[string]any{
		"resistors": len(batch.Entries),
		"failed":    batch.Failed,
	}).Info("batch decoded")

	return batch, nil
}
