package transform

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/compozy/tokencase/engine/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConvertToken turns an upper-snake-case identifier into Pascal case.
// An empty token converts to the empty string.
func ConvertToken(raw string) string {
	return convertToken(cases.Title(language.English), raw)
}

// cases.Caser is stateful, so callers converting many tokens pass their own.
// Only the first rune of each word is title-cased; the caser alone would
// also capitalize after digits and punctuation ("2nd" -> "2Nd").
func convertToken(caser cases.Caser, raw string) string {
	word := strings.ToLower(strings.TrimSpace(raw))
	word = strings.ReplaceAll(word, "_", " ")

	var b strings.Builder
	for _, part := range strings.Fields(word) {
		_, n := utf8.DecodeRuneInString(part)
		b.WriteString(caser.String(part[:n]))
		b.WriteString(part[n:])
	}
	return b.String()
}

// ValidateToken checks that a token holds only ASCII letters and underscores.
// Empty tokens are valid.
func ValidateToken(raw string) error {
	token := strings.TrimSpace(raw)
	for i, r := range token {
		if r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			continue
		}
		return core.NewError(
			fmt.Errorf("token %q has invalid character %q", token, r),
			core.ErrorCodeInvalidTokenFormat,
			map[string]any{
				"token":    token,
				"position": i,
			},
		)
	}
	return nil
}

// Identifiers returns the non-empty raw tokens of every data line in source, in order
func Identifiers(source string) []string {
	identifiers := []string{}
	for _, raw := range strings.Split(source, "\n") {
		if kind, ok := ClassifyLine(raw); !ok || kind != core.LineKindData {
			continue
		}
		for _, token := range strings.Split(strings.TrimSpace(raw), ",") {
			if token = strings.TrimSpace(token); token != "" {
				identifiers = append(identifiers, token)
			}
		}
	}
	return identifiers
}
