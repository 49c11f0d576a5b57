package carousel

import (
	"errors"
	"fmt"
	"strings"
)

// Presentation selects which carousel variant a page uses.
type Presentation string

const (
	PresentationContinuous Presentation = "continuous"
	PresentationPaged      Presentation = "paged"
)

// ParseMode parses a presentation name. An empty string selects the
// continuous presentation.
func ParseMode(s string) (Presentation, error) {
	switch p := Presentation(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PresentationContinuous, nil
	case PresentationContinuous, PresentationPaged:
		return p, nil
	default:
		return "", errors.Join(ErrInvalidMode, fmt.Errorf("unknown presentation %q", s))
	}
}

// TranslateX renders a horizontal pixel offset as a CSS transform.
func TranslateX(offset float64) string {
	return fmt.Sprintf("translateX(%gpx)", offset)
}

// TranslatePercent renders a page index as a CSS transform.
func TranslatePercent(index int) string {
	return fmt.Sprintf("translateX(%d%%)", -index*100)
}
