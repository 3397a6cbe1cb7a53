package orchestrator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/compozy/autotag/internal/domain"
)

// invalidRefChars matches characters git refuses in reference names.
var invalidRefChars = regexp.MustCompile(`[\x00-\x20\x7f~^:?*\[\\]`)

// ValidateTagName checks a derived tag against git's reference name rules.
func ValidateTagName(tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: tag name cannot be empty", domain.ErrInvalidTagName)
	}
	if len(tag) > 255 {
		return fmt.Errorf("%w: tag name too long: %d characters (max: 255)", domain.ErrInvalidTagName, len(tag))
	}
	if strings.HasPrefix(tag, "-") {
		return fmt.Errorf("%w: tag name cannot start with a dash: %s", domain.ErrInvalidTagName, tag)
	}
	if strings.HasSuffix(tag, "/") || strings.HasSuffix(tag, ".") {
		return fmt.Errorf("%w: tag name cannot end with slash or dot: %s", domain.ErrInvalidTagName, tag)
	}
	if strings.Contains(tag, "..") || strings.Contains(tag, "@{") || strings.Contains(tag, "//") {
		return fmt.Errorf("%w: tag name contains an invalid sequence: %s", domain.ErrInvalidTagName, tag)
	}
	if strings.HasSuffix(tag, ".lock") {
		return fmt.Errorf("%w: tag name cannot end with .lock: %s", domain.ErrInvalidTagName, tag)
	}
	if invalidRefChars.MatchString(tag) {
		return fmt.Errorf("%w: tag name contains invalid characters: %q", domain.ErrInvalidTagName, tag)
	}
	return nil
}
