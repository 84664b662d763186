package hiring

import (
	"strings"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
)

// matchRoles returns the tags of every role rule with at least one needle
// present in text. Text is matched case-insensitively.
func matchRoles(text string, rules []config.RoleRule) []string {
	low := strings.ToLower(text)

	var tags []string
	for _, r := range rules {
		for _, needle := range r.Any {
			n := strings.ToLower(strings.TrimSpace(needle))
			if n == "" {
				continue
			}
			if strings.Contains(low, n) {
				tags = append(tags, r.Tag)
				break
			}
		}
	}
	return tags
}

func mergeTags(dst []string, add []string) []string {
	for _, t := range add {
		found := false
		for _, d := range dst {
			if d == t {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, t)
		}
	}
	return dst
}

func allMatched(tags []string, rules []config.RoleRule) bool {
	return len(tags) >= len(rules)
}
