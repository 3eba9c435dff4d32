package parsing

import "strings"

// Contact heuristics: a line that appears before any section and matches one
// of these patterns is treated as contact information.
var (
	// platformTokensLower match hosting/social URLs case-insensitively.
	platformTokensLower = []string{"linkedin.com", "github.com"}

	// platformTokensExact are bare labels matched case-sensitively so prose
	// like "a github workflow" is not misread as contact info.
	platformTokensExact = []string{"LinkedIn", "GitHub", "Website", "Portfolio"}

	// locationTokens is a fixed literal list, knowingly incomplete.
	locationTokens = []string{"Florida", "California", "New York", "Texas", "USA", "Remote"}
)

// IsContactLine reports whether a line reads like contact information: an
// email address, a known platform link or label, or a known location name.
func IsContactLine(line string) bool {
	if line == "" {
		return false
	}

	if strings.Contains(line, "@") {
		return true
	}

	lower := strings.ToLower(line)
	for _, token := range platformTokensLower {
		if strings.Contains(lower, token) {
			return true
		}
	}
	for _, token := range platformTokensExact {
		if strings.Contains(line, token) {
			return true
		}
	}
	for _, token := range locationTokens {
		if strings.Contains(line, token) {
			return true
		}
	}

	return false
}
