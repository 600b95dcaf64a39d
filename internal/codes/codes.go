// Package codes generates the human-readable sequential codes assigned to
// contest entries, formatted as PREFIX-NNNNNN.
package codes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// FallbackPrefix is used when normalization leaves nothing of the
	// configured prefix.
	FallbackPrefix = "ENTRY"
	maxPrefixLen   = 24
)

var (
	disallowed     = regexp.MustCompile(`[^A-Z0-9-]+`)
	repeatedHyphen = regexp.MustCompile(`-{2,}`)
)

// Normalize maps an arbitrary configured prefix onto the code alphabet:
// uppercase A-Z, 0-9 and single hyphens, at most 24 characters, never empty.
// Normalizing an already-normalized prefix returns it unchanged.
func Normalize(prefix string) string {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	p = disallowed.ReplaceAllString(p, "")
	p = repeatedHyphen.ReplaceAllString(p, "-")
	p = strings.Trim(p, "-")
	if len(p) > maxPrefixLen {
		p = strings.Trim(p[:maxPrefixLen], "-")
	}
	if p == "" {
		return FallbackPrefix
	}
	return p
}

// Next returns the first unused sequential code for the prefix: the maximum
// numeric suffix among existing codes matching PREFIX-<digits>, plus one.
// Codes under other prefixes are ignored. width is the zero-padding width;
// sequences that outgrow it simply print wider.
func Next(existing []string, prefix string, width int) string {
	prefix = Normalize(prefix)
	return Format(prefix, MaxSequence(existing, prefix)+1, width)
}

// MaxSequence scans existing codes for the highest numeric suffix under the
// given (already normalized) prefix. Returns 0 when none match.
func MaxSequence(existing []string, prefix string) int {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)$`)
	max := 0
	for _, code := range existing {
		m := pattern.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// Format renders a code as PREFIX-<sequence zero-padded to width>.
func Format(prefix string, sequence, width int) string {
	if width <= 0 {
		width = 6
	}
	return fmt.Sprintf("%s-%0*d", prefix, width, sequence)
}
