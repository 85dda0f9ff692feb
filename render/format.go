package render

import (
	"strconv"
	"strings"
)

// FormatCount renders n with comma thousands separators
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// AchievementText returns the popup body for a milestone label
// Numeric labels are reached thresholds, anything else is shown as is
func AchievementText(label string) string {
	n, err := strconv.ParseInt(label, 10, 64)
	if err != nil {
		return label
	}
	return "You reached " + FormatCount(n) + " clicks!"
}
