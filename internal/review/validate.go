// Package review validates review and reply content before it is sent to
// the backend.
package review

import (
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/model"
)

// MaxWords is the longest review or reply accepted.
const MaxWords = 100

var tagPattern = regexp.MustCompile(`<(.|\n)*?>`)

// StripHTML removes markup tags left by the rich-text editor.
func StripHTML(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// CountWords counts runs of ASCII letters and digits. A backslash or hyphen
// swallows itself and the character after it.
func CountWords(s string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}

	runes := []rune(s)
	count := 0
	inWord := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' || r == '-' {
			i++
			continue
		}
		if isWordRune(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func invalid(msg string) error {
	return model.NewDomainError(model.ErrCodeInvalidReview, msg)
}

// Validate checks a new or edited review. The first failing rule wins.
func Validate(title, content string, stars int) error {
	if strings.TrimSpace(title) == "" {
		return invalid("A title cannot be empty.")
	}
	if stars == 0 {
		return invalid("Please select a star rating.")
	}
	if stars < 0 || stars > 5 {
		return invalid("A star rating must be between 1 and 5.")
	}

	text := strings.TrimSpace(StripHTML(content))
	if text == "" {
		return invalid("A review cannot be empty.")
	}
	if n := CountWords(text); n > MaxWords {
		return invalid(fmt.Sprintf("The review cannot exceed %d words. Current word count: %d", MaxWords, n))
	}
	return nil
}

// ValidateReply checks reply content.
func ValidateReply(content string) error {
	text := strings.TrimSpace(StripHTML(content))
	if text == "" {
		return invalid("Reply content is required.")
	}
	if n := CountWords(text); n > MaxWords {
		return invalid(fmt.Sprintf("The reply cannot exceed %d words. Current word count: %d", MaxWords, n))
	}
	return nil
}
