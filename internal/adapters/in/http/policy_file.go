package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"

	"governance/internal/core/domain/rules"

	"gopkg.in/yaml.v3"
)

type policyFile struct {
	Routes map[string]policyOverride `yaml:"routes"`
}

// policyOverride leaves unset flags at their default.
type policyOverride struct {
	BlockOnErrors   *bool `yaml:"blockOnErrors"`
	BlockOnWarnings *bool `yaml:"blockOnWarnings"`
}

// LoadPolicies reads per-route policy overrides from a YAML file. An empty path
// yields no overrides. Route names missing from known are rejected.
func LoadPolicies(path string, known []string) (map[string]rules.Policy, error) {
	if path == "" {
		return map[string]rules.Policy{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return ParsePolicies(data, known)
}

// ParsePolicies decodes policy overrides from YAML.
func ParsePolicies(data []byte, known []string) (map[string]rules.Policy, error) {
	var file policyFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	var unknown []string
	policies := make(map[string]rules.Policy, len(file.Routes))
	for name, override := range file.Routes {
		if !slices.Contains(known, name) {
			unknown = append(unknown, name)
			continue
		}

		p := rules.DefaultPolicy()
		if override.BlockOnErrors != nil {
			p.BlockOnErrors = *override.BlockOnErrors
		}
		if override.BlockOnWarnings != nil {
			p.BlockOnWarnings = *override.BlockOnWarnings
		}
		policies[name] = p
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("policy file names unknown routes: %v", unknown)
	}
	return policies, nil
}
