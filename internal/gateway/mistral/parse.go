package mistral

import "strings"

// parseList turns bullet-style free text into a list of items: one item
// per line, blank lines dropped, leading/trailing "-" bullets and
// whitespace stripped, order preserved.
func parseList(text string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, strings.TrimSpace(strings.Trim(line, "- ")))
	}
	return items
}

func containsErrorMarker(text string) bool {
	return strings.Contains(text, "Error")
}
