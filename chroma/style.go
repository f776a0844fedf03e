package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/lospec"
)

// StyleFromStyles returns a function that maps chroma token types to lospec
// styles for the data languages shown in previews (JSON manifests).
func StyleFromStyles(s lospec.Styles) StyleFunc {
	return func(tt chromalib.TokenType) lospec.Style {
		switch tt {
		// Object keys
		case chromalib.NameTag, chromalib.NameAttribute:
			return lospec.Style{Foreground: s.Key.Foreground, Bold: true}

		// Strings
		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return lospec.Style{Foreground: s.String.Foreground}

		// Numbers and literal constants
		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct,
			chromalib.KeywordConstant:
			return lospec.Style{Foreground: s.Number.Foreground}

		// Punctuation and comments
		case chromalib.Punctuation, chromalib.Comment, chromalib.CommentSingle,
			chromalib.CommentMultiline:
			return lospec.Style{Foreground: s.Meta.Foreground}

		default:
			return lospec.Style{}
		}
	}
}
