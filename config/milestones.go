package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Milestone is one threshold entry of the milestones file
type Milestone struct {
	Value int64  `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// Milestones is the milestones file document
type Milestones struct {
	Milestones []Milestone `yaml:"milestones"`
}

// LoadMilestones reads a YAML milestones file
// Supports environment variable expansion in the form ${VAR} or ${VAR:default}
func LoadMilestones(path string) (*Milestones, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read milestones file %s: %w", path, err)
	}
	return ParseMilestones([]byte(expandEnvVars(string(data))))
}

// ParseMilestones decodes and validates a milestones document
// Entries may appear in any order, they are sorted by value
func ParseMilestones(data []byte) (*Milestones, error) {
	var ms Milestones
	if err := yaml.Unmarshal(data, &ms); err != nil {
		return nil, fmt.Errorf("failed to parse milestones YAML: %w", err)
	}
	if len(ms.Milestones) == 0 {
		return nil, fmt.Errorf("milestones file defines no milestones")
	}

	sort.SliceStable(ms.Milestones, func(i, j int) bool {
		return ms.Milestones[i].Value < ms.Milestones[j].Value
	})
	for i, m := range ms.Milestones {
		if m.Value <= 0 {
			return nil, fmt.Errorf("milestone %q has non-positive value %d", m.Label, m.Value)
		}
		if i > 0 && m.Value == ms.Milestones[i-1].Value {
			return nil, fmt.Errorf("duplicate milestone value: %d", m.Value)
		}
	}
	return &ms, nil
}

// Split returns ascending thresholds and labels keyed by threshold
func (ms *Milestones) Split() ([]int64, map[int64]string) {
	thresholds := make([]int64, len(ms.Milestones))
	labels := make(map[int64]string)
	for i, m := range ms.Milestones {
		thresholds[i] = m.Value
		if m.Label != "" {
			labels[m.Value] = m.Label
		}
	}
	return thresholds, labels
}

// expandEnvVars expands ${VAR} and ${VAR:default}
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		name, def, _ := strings.Cut(key, ":")
		if v := os.Getenv(name); v != "" {
			return v
		}
		return def
	})
}
