package cli

import (
	"fmt"
	"os"

	"github.com/getmockd/schemafaker/pkg/cli/internal/parse"
	"github.com/getmockd/schemafaker/pkg/generator"
	"gopkg.in/yaml.v3"
)

// overridesFile is the document accepted by --overrides: either a bare list
// of overrides or a mapping with an "overrides" key.
type overridesFile struct {
	Overrides []generator.Override `yaml:"overrides"`
}

// loadOverrides reads overrides from a YAML or JSON file.
func loadOverrides(path string) ([]generator.Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}

	var list []generator.Override
	if err := yaml.Unmarshal(data, &list); err == nil {
		return validOverrides(path, list)
	}

	var doc overridesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse overrides %s: %w", path, err)
	}
	return validOverrides(path, doc.Overrides)
}

func validOverrides(path string, list []generator.Override) ([]generator.Override, error) {
	for i, o := range list {
		if o.Name == "" {
			return nil, fmt.Errorf("overrides %s: entry %d has no name", path, i+1)
		}
	}
	return list, nil
}

// parseSet turns "name=value" into a fixed override.
func parseSet(s string) (generator.Override, error) {
	name, value, ok := parse.KeyValue(s, '=')
	if !ok || name == "" {
		return generator.Override{}, fmt.Errorf("invalid --set %q: expected name=value", s)
	}
	return generator.Fixed(name, value), nil
}

// parseSetRandom turns "name=a|b|c" into a random pick override.
func parseSetRandom(s string) (generator.Override, error) {
	name, values, ok := parse.KeyValue(s, '=')
	if !ok || name == "" {
		return generator.Override{}, fmt.Errorf("invalid --set-random %q: expected name=a|b|c", s)
	}
	return generator.OneOf(name, parse.SplitTrim(values, "|")...), nil
}

// parseDerive turns "name=expression" into a derived override.
func parseDerive(s string) (generator.Override, error) {
	name, expression, ok := parse.KeyValue(s, '=')
	if !ok || name == "" || expression == "" {
		return generator.Override{}, fmt.Errorf("invalid --derive %q: expected name=expression", s)
	}
	return generator.Derived(name, expression), nil
}
