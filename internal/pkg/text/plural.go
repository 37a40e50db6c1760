package text

import "fmt"

// Pluralize picks the singular or plural noun based on count: "1 reply", "3 replies".
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
