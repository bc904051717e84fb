package provider

import (
	"strconv"
	"strings"
)

const userAgent = "web3-scout/1.0 (+https://github.com/scaryPonens/web3-scout)"

// sanitizeText collapses whitespace and truncates to maxLen bytes.
func sanitizeText(in string, maxLen int) string {
	in = strings.TrimSpace(in)
	if in == "" {
		return ""
	}
	in = strings.Join(strings.Fields(in), " ")
	if maxLen > 0 && len(in) > maxLen {
		in = in[:maxLen]
	}
	return in
}

// truncateWithEllipsis bounds descriptive text, marking the cut with "...".
func truncateWithEllipsis(in string, maxLen int) string {
	in = sanitizeText(in, 0)
	if maxLen <= 0 || len(in) <= maxLen {
		return in
	}
	return in[:maxLen] + "..."
}

// asFloat tolerates the mixed number/string typing some explorers emit.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
