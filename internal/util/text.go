package util

// Truncate shortens s to max runes, appending an ellipsis when it cuts.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// ShortID trims long opaque identifiers for table output.
func ShortID(id string, max int) string {
	if len(id) <= max {
		return id
	}
	return id[:max] + "…"
}
