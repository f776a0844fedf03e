package mock

import "github.com/fwojciec/lospec"

// Compile-time interface verification.
var (
	_ lospec.Tokenizer        = (*Tokenizer)(nil)
	_ lospec.LanguageDetector = (*LanguageDetector)(nil)
)

// Tokenizer is a mock implementation of lospec.Tokenizer.
type Tokenizer struct {
	TokenizeFn      func(language, source string) []lospec.Token
	TokenizeLinesFn func(language, source string) [][]lospec.Token
}

func (t *Tokenizer) Tokenize(language, source string) []lospec.Token {
	return t.TokenizeFn(language, source)
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]lospec.Token {
	return t.TokenizeLinesFn(language, source)
}

// LanguageDetector is a mock implementation of lospec.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}
