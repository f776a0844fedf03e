package lospec

// Token represents a syntax-highlighted segment of source text.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from source text.
type Tokenizer interface {
	// Tokenize splits source into syntax-highlighted tokens for the given
	// language. Returns nil if the language is not supported.
	Tokenize(language, source string) []Token

	// TokenizeLines tokenizes source with full context and splits the
	// result at newlines. Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector detects a highlighting language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns the language name for path, or "" if unknown.
	DetectFromPath(path string) string
}
