package condmark

import (
	"regexp"
)

// TokenType represents the type of a template token
type TokenType int

const (
	TokenText TokenType = iota
	TokenOpen
	TokenClose
)

// Token represents a scanned piece of the template. Raw always holds the
// exact source text, so markers that cannot be paired into a block can be
// emitted verbatim.
type Token struct {
	Type      TokenType
	Condition string // condition path for TokenOpen, empty otherwise
	Raw       string
}

var (
	// Matches both marker forms in one left-to-right scan. Group 1 captures
	// the condition of an opening marker; it is unset for a closing marker.
	// Marker text that doesn't fit either form is not a token at all and
	// stays part of the surrounding text.
	markerRegex = regexp.MustCompile(`/\*(?:if:(!?[A-Za-z0-9_.]+)|endif)\*/`)
)

// Tokenize scans a template string into text and marker tokens
func Tokenize(input string) []Token {
	var tokens []Token
	lastEnd := 0

	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.WithField("input_length", len(input)).Debug("Starting marker scan")
	}

	matches := markerRegex.FindAllStringSubmatchIndex(input, -1)

	for _, match := range matches {
		// Add any text before this marker
		if match[0] > lastEnd {
			tokens = append(tokens, Token{
				Type: TokenText,
				Raw:  input[lastEnd:match[0]],
			})
		}

		raw := input[match[0]:match[1]]
		if match[2] >= 0 {
			token := Token{
				Type:      TokenOpen,
				Condition: input[match[2]:match[3]],
				Raw:       raw,
			}
			if logger.IsDebugMode() {
				logger.WithField("condition", token.Condition).Debug("Found opening marker")
			}
			tokens = append(tokens, token)
		} else {
			tokens = append(tokens, Token{
				Type: TokenClose,
				Raw:  raw,
			})
		}

		lastEnd = match[1]
	}

	// Add any remaining text
	if lastEnd < len(input) {
		tokens = append(tokens, Token{
			Type: TokenText,
			Raw:  input[lastEnd:],
		})
	}

	if logger.IsDebugMode() {
		logger.WithField("token_count", len(tokens)).Debug("Marker scan complete")
	}

	return tokens
}

// FindMarkers finds all conditional markers in a string.
// This is a utility function for debugging and analysis.
func FindMarkers(input string) []string {
	matches := markerRegex.FindAllString(input, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
