package tools

import (
	"linkmind/internal/backend"
	"linkmind/internal/classify"
	"linkmind/internal/registry"
)

// All returns the full tool set in registration order. A nil rule slice
// means the default classification rules.
func All(client backend.Client, rules []classify.Rule) []registry.Tool {
	return []registry.Tool{
		NewValidator(client),
		NewImporter(client),
		NewOptimizer(client, rules),
		NewDetector(client),
		NewOrganizer(client),
	}
}
