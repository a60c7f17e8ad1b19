package config

import (
	"errors"
	"fmt"
)

// Validate checks the snapshot for the fields the engine cannot run
// without. Tool entries must carry an id, ids must be unique, and declared
// dependencies must reference a configured tool.
func (s *Snapshot) Validate() error {
	if s.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if s.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}

	seen := make(map[string]bool, len(s.Tools))
	for _, tc := range s.Tools {
		if tc.ID == "" {
			return errors.New("tool entry missing id")
		}
		if seen[tc.ID] {
			return fmt.Errorf("duplicate tool id %q in configuration", tc.ID)
		}
		seen[tc.ID] = true
		if tc.Priority < 0 {
			return fmt.Errorf("tool %q: priority must not be negative", tc.ID)
		}
	}

	for _, tc := range s.Tools {
		for _, dep := range tc.Dependencies {
			if !seen[dep] {
				return fmt.Errorf("tool %q depends on unknown tool %q", tc.ID, dep)
			}
		}
	}

	return nil
}
