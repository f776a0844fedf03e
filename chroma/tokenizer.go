// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to lospec styles.
type StyleFunc func(chromalib.TokenType) lospec.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromStyles to derive one from a theme's lospec.Styles.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []lospec.Token {
	if source == "" {
		return []lospec.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	return t.tokenize(lexer, source)
}

// TokenizeLines tokenizes source with full context, then splits tokens by line.
// Tokens spanning a newline, such as whitespace runs, are split at the boundary.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]lospec.Token {
	if source == "" {
		return [][]lospec.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	tokens := t.tokenize(lexer, source)
	if tokens == nil {
		return nil
	}
	return splitTokensByLine(tokens)
}

func (t *Tokenizer) tokenize(lexer chromalib.Lexer, source string) []lospec.Token {
	// Coalesce merges consecutive tokens of the same type
	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil
	}

	tokens := []lospec.Token{}
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, lospec.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return tokens
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
func splitTokensByLine(tokens []lospec.Token) [][]lospec.Token {
	if len(tokens) == 0 {
		return [][]lospec.Token{}
	}

	var result [][]lospec.Token
	var currentLine []lospec.Token

	for _, tok := range tokens {
		// Token without newlines goes directly to current line
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		// Split the token at newline boundaries
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, lospec.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			// If this isn't the last part, we hit a newline - finalize the line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	// Don't forget the last line if it has content
	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
