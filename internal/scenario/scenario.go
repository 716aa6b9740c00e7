// Package scenario reads calculation requests from YAML or JSON files so
// they can be replayed from the command line.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"blended-fee-engine/internal/model"
)

var ErrNoScenario = errors.New("scenario file is empty")

// File is the on-disk shape of a scenario.
type File struct {
	ID        string           `yaml:"id"`
	Inputs    *model.RawInputs `yaml:"inputs"`
	Mutations []Step           `yaml:"mutations"`
}

// Step is one mutation; properties are free-form and re-encoded as JSON.
type Step struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Properties map[string]any `yaml:"properties"`
}

// Load reads path. Files ending in .json are decoded as a
// CalculationRequest; anything else as a YAML File.
func Load(path string) (*model.CalculationRequest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoScenario)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var req model.CalculationRequest
		if err := json.Unmarshal(b, &req); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return &req, nil
	}
	return Parse(b)
}

// Parse decodes a YAML scenario into a request.
func Parse(b []byte) (*model.CalculationRequest, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return f.Request()
}

// Request converts the file into an engine request. Steps without an id
// are numbered from 1.
func (f *File) Request() (*model.CalculationRequest, error) {
	req := &model.CalculationRequest{
		ScenarioID:    f.ID,
		InitialInputs: f.Inputs,
	}
	for i, s := range f.Mutations {
		if s.Name == "" {
			return nil, fmt.Errorf("mutation %d: name is required", i+1)
		}
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("step-%d", i+1)
		}
		m := model.Mutation{MutationID: id, MutationDefinitionName: s.Name}
		if len(s.Properties) > 0 {
			props, err := json.Marshal(s.Properties)
			if err != nil {
				return nil, fmt.Errorf("mutation %d: encode properties: %w", i+1, err)
			}
			m.MutationProperties = props
		}
		req.CalculationInstructions.Mutations = append(req.CalculationInstructions.Mutations, m)
	}
	return req, nil
}
