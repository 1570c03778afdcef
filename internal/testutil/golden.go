// Package testutil loads the fixed-input/fixed-output scenario fixtures
// exercised by cmd/monkey's end-to-end test.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// Scenario is one row of spec §8's end-to-end table: a source string and
// the Inspect() of its evaluated result (or an "ERROR: ..."
// result for scenarios that expect a runtime error).
type Scenario struct {
	Name     string `json:"name"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// LoadScenarios reads every *.json file in dir and returns the decoded
// Scenarios, sorted by filename for deterministic test output.
func LoadScenarios(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]Scenario, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var s Scenario
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		if s.Name == "" {
			s.Name = name
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
