package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseTags splits the comma-separated --tags flag, trimming whitespace
// and dropping empty entries.
func ParseTags(flags *pflag.FlagSet) ([]string, error) {
	tagsStr, _ := flags.GetString("tags")
	var tags []string
	if tagsStr != "" {
		for _, t := range strings.Split(tagsStr, ",") {
			trimmed := strings.TrimSpace(t)
			if trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}
	return tags, nil
}

// ParseThreshold reads the --threshold flag and bounds it to [0,1].
func ParseThreshold(flags *pflag.FlagSet, def float64) (float64, error) {
	threshold, err := flags.GetFloat64("threshold")
	if err != nil {
		return def, nil
	}
	if threshold < 0 || threshold > 1 {
		return 0, fmt.Errorf("threshold must be between 0 and 1, got %v", threshold)
	}
	return threshold, nil
}
