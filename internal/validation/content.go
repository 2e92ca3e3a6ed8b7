package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxPostLength    = 500
	MaxCommentLength = 280
)

// ValidatePostContent enforces post body limits. Length is measured in
// runes so multi-byte characters count once.
func ValidatePostContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("post content cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxPostLength {
		return fmt.Errorf("post content must not exceed %d characters", MaxPostLength)
	}
	return nil
}

// ValidateCommentContent enforces comment body limits.
func ValidateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("comment content cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxCommentLength {
		return fmt.Errorf("comment content must not exceed %d characters", MaxCommentLength)
	}
	return nil
}
