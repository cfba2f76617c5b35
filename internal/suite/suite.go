// Package suite loads named regex test suites and runs them against
// compiled patterns.
package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Suite is one pattern with the words it must accept or reject.
type Suite struct {
	Name  string `json:"name"`
	Regex string `json:"regex"`
	Cases []Case `json:"test_strings"`
}

// Case is a single word and the expected verdict.
type Case struct {
	Input    string `json:"input"`
	Expected bool   `json:"expected"`
}

// Load reads suites from path. Files ending in .json use the JSON layout,
// everything else the text grammar.
func Load(path string) ([]Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return decodeJSON(path, data)
	}
	return ParseString(path, string(data))
}

// LoadJSON decodes the JSON layout:
//
//	[{"name": "...", "regex": "...", "test_strings": [{"input": "...", "expected": true}]}]
func LoadJSON(r io.Reader) ([]Suite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeJSON("input", data)
}

func decodeJSON(name string, data []byte) ([]Suite, error) {
	var suites []Suite
	if err := json.Unmarshal(data, &suites); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return suites, nil
}
