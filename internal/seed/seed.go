// Package seed loads spread records from YAML files into the store.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"spreadscan/internal/logger"
	"spreadscan/internal/services"
	"spreadscan/internal/validator"
)

// File is the layout of a seed file.
type File struct {
	Spreads []services.SpreadInput `yaml:"spreads"`
}

// Result summarizes a seeding run.
type Result struct {
	Files    []string `json:"files"`
	Received int      `json:"received"`
	Created  int      `json:"created"`
}

// Decode parses one seed document. Unknown keys are rejected so a typo in a
// field name fails loudly instead of seeding a zero value.
func Decode(data []byte) ([]services.SpreadInput, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return f.Spreads, nil
}

// LoadFiles expands a doublestar pattern such as "seeds/**/*.yaml" and decodes
// every match in lexical order. Each record is checked against the same
// binding rules the HTTP ingestion endpoint applies.
func LoadFiles(pattern string) ([]services.SpreadInput, []string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("bad seed pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	v := validator.New()
	var inputs []services.SpreadInput
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		records, err := Decode(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		for i := range records {
			if err := v.Struct(records[i]); err != nil {
				return nil, nil, fmt.Errorf("%s: record %d: %w", path, i, err)
			}
		}
		inputs = append(inputs, records...)
	}
	return inputs, matches, nil
}

// Run loads every file matching pattern and imports the records. Records
// whose id already exists are skipped, so Run can be repeated safely.
func Run(spreads services.SpreadServicer, pattern string) (*Result, error) {
	inputs, files, err := LoadFiles(pattern)
	if err != nil {
		return nil, err
	}
	result := &Result{Files: files, Received: len(inputs)}
	if len(inputs) == 0 {
		logger.Get().Warnw("no seed records found", "pattern", pattern)
		return result, nil
	}

	created, err := spreads.ImportSpreads(inputs)
	if err != nil {
		return nil, err
	}
	result.Created = created

	logger.Get().Infow("seeded spreads",
		"files", len(files),
		"received", result.Received,
		"created", result.Created,
	)
	return result, nil
}
