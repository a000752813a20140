// Package chainfile reads and writes scoring presets as JSON documents.
//
// A file holds one preset object, an array of presets, or an object with a
// "presets" array. Steps name their column by key; keys are resolved against
// the dataset the presets will run on.
package chainfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/errors"

	"github.com/tidwall/gjson"
)

// ColumnResolver looks up column descriptors by key. *dataset.Table satisfies it.
type ColumnResolver interface {
	Column(key string) (dataset.Column, bool)
}

type presetDoc struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Column    string    `json:"column,omitempty"`
	Steps     []stepDoc `json:"steps"`
	Operators []string  `json:"operators"`
}

type stepDoc struct {
	Column string          `json:"column"`
	Method string          `json:"method"`
	Weight *float64        `json:"weight,omitempty"`
	Config json.RawMessage `json:"config,omitempty"`
}

// Decode parses presets from JSON and binds their steps to columns
func Decode(data []byte, columns ColumnResolver) ([]scoring.Preset, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidInput("preset document is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if list := root.Get("presets"); list.Exists() {
		root = list
	}

	var raws []gjson.Result
	switch {
	case root.IsArray():
		raws = root.Array()
	case root.IsObject():
		raws = []gjson.Result{root}
	default:
		return nil, errors.InvalidInput("preset document must be an object or an array")
	}

	presets := make([]scoring.Preset, 0, len(raws))
	for i, raw := range raws {
		preset, err := decodePreset(raw, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "preset %d", i)
		}
		presets = append(presets, preset)
	}
	return presets, nil
}

func decodePreset(raw gjson.Result, columns ColumnResolver) (scoring.Preset, error) {
	var doc presetDoc
	if err := json.Unmarshal([]byte(raw.Raw), &doc); err != nil {
		return scoring.Preset{}, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("failed to parse preset: %w", err))
	}

	preset := scoring.Preset{
		ID:     core.PresetID(strings.TrimSpace(doc.ID)),
		Name:   doc.Name,
		Column: doc.Column,
	}
	if preset.ID.String() == "" {
		preset.ID = core.NewPresetID()
	}

	for i, s := range doc.Steps {
		step, err := decodeStep(s, columns)
		if err != nil {
			return scoring.Preset{}, errors.Wrapf(err, "step %d", i)
		}
		preset.Chain.Steps = append(preset.Chain.Steps, step)
	}

	for _, o := range doc.Operators {
		op, ok := scoring.ParseOperator(o)
		if !ok {
			// Kept verbatim so chain validation can report it
			op = scoring.Operator(o)
		}
		preset.Chain.Operators = append(preset.Chain.Operators, op)
	}

	return preset, nil
}

func decodeStep(doc stepDoc, columns ColumnResolver) (scoring.Step, error) {
	col, ok := columns.Column(strings.TrimSpace(doc.Column))
	if !ok {
		return scoring.Step{}, errors.WithCode(errors.CodeNotFound, core.NewColumnNotFoundError(doc.Column))
	}

	step := scoring.NewStep(col, scoring.MethodID(strings.TrimSpace(doc.Method)), nil)
	if doc.Weight != nil {
		step.Weight = *doc.Weight
	}

	if len(doc.Config) == 0 || string(doc.Config) == "null" {
		return step, nil
	}

	// Unknown methods and the bell curve have no variant to decode into
	cfg := scoring.NewConfig(step.Method)
	if cfg == nil {
		return step, nil
	}
	if err := json.Unmarshal(doc.Config, cfg); err != nil {
		return scoring.Step{}, errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("%w: %v", core.ErrInvalidConfig, err))
	}
	step.Config = scoring.Deref(cfg)
	return step, nil
}

// Encode renders presets as an indented JSON array
func Encode(presets []scoring.Preset) ([]byte, error) {
	docs := make([]presetDoc, 0, len(presets))
	for _, p := range presets {
		doc := presetDoc{
			ID:        p.ID.String(),
			Name:      p.Name,
			Column:    p.Column,
			Steps:     make([]stepDoc, 0, len(p.Chain.Steps)),
			Operators: make([]string, 0, len(p.Chain.Operators)),
		}
		for _, s := range p.Chain.Steps {
			weight := s.Weight
			step := stepDoc{Column: s.Column.Key, Method: string(s.Method), Weight: &weight}
			if s.Config != nil {
				raw, err := json.Marshal(s.Config)
				if err != nil {
					return nil, errors.Wrapf(err, "failed to encode config for %s", s.Column.Key)
				}
				step.Config = raw
			}
			doc.Steps = append(doc.Steps, step)
		}
		for _, op := range p.Chain.Operators {
			doc.Operators = append(doc.Operators, string(op))
		}
		docs = append(docs, doc)
	}
	return json.MarshalIndent(docs, "", "  ")
}

// ReadFile decodes the presets stored at path
func ReadFile(path string, columns ColumnResolver) ([]scoring.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("failed to read preset file: %w", err))
	}
	return Decode(data, columns)
}

// WriteFile encodes presets to path
func WriteFile(path string, presets []scoring.Preset) error {
	data, err := Encode(presets)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write preset file")
	}
	return nil
}
