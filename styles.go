package lospec

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format. Empty strings mean no override
// (use the terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the visual elements of search output.
type Styles struct {
	Title    ColorPair // Palette title
	Author   ColorPair // " by <user>" suffix
	Slug     ColorPair // Slug shown in the browser and preview
	Tag      ColorPair // Tag chips in the browser
	Meta     ColorPair // Dates, ids and other secondary text
	Selected ColorPair // Highlighted row in the browser
	Path     ColorPair // Filesystem paths in the dry-run preview
	Key      ColorPair // JSON keys in highlighted manifests
	String   ColorPair // JSON strings in highlighted manifests
	Number   ColorPair // JSON numbers in highlighted manifests
}

// Theme provides styles for rendering search results and previews.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
