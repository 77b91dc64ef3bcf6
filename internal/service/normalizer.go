package service

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/vanshika/finsight/backend/internal/domain"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var folder = cases.Fold()

// sanitizeString collapses whitespace and trims the result.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// canonical maps a free-form enum value onto its canonical spelling. Matching
// is case-folded and whitespace-insensitive; an empty value stays empty.
func canonical[T ~string](field, raw string, allowed []T) (T, error) {
	raw = sanitizeString(raw)
	if raw == "" {
		return "", nil
	}
	key := folder.String(raw)
	for _, v := range allowed {
		if folder.String(string(v)) == key {
			return v, nil
		}
	}
	return "", invalidf(field, "unknown value %q", raw)
}

func invalidf(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, field, fmt.Sprintf(format, args...))
}

func nonNegative(field string, v int64) error {
	if v < 0 {
		return invalidf(field, "must not be negative")
	}
	return nil
}
