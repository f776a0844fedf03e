package lospec

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Format identifies an output file format.
type Format string

// Output formats.
const (
	FormatColorset Format = "colorset" // Xcode asset catalog .colorset folders
	FormatHex      Format = "hex"      // Newline-delimited hex values
	FormatPNG      Format = "png"      // Raster image of the palette
	FormatPAL      Format = "pal"      // JASC palette table
	FormatASE      Format = "ase"      // Adobe swatch exchange
	FormatGPL      Format = "gpl"      // GIMP palette
	FormatTXT      Format = "txt"      // Paint.NET palette
)

// ExportKind selects how a fetched payload is turned into output.
type ExportKind int

// Export kinds.
const (
	// ExportPassthrough writes the fetched bytes verbatim.
	ExportPassthrough ExportKind = iota
	// ExportStructured synthesizes a directory tree from a hex list.
	ExportStructured
)

// FormatInfo describes how a format is fetched and written.
type FormatInfo struct {
	Format      Format
	Extension   string     // Catalog file extension fetched for this format
	Kind        ExportKind // Local post-processing
	Sized       bool       // Whether the size hint applies
	Description string
}

// DefaultSize is the raster scale used when no size hint is given.
const DefaultSize = 1

// formats is the fixed format table. Adding a passthrough format only
// requires a new entry.
var formats = map[Format]FormatInfo{
	FormatColorset: {Format: FormatColorset, Extension: "hex", Kind: ExportStructured, Description: "Xcode .colorset folders"},
	FormatHex:      {Format: FormatHex, Extension: "hex", Kind: ExportPassthrough, Description: "List of hex values"},
	FormatPNG:      {Format: FormatPNG, Extension: "png", Kind: ExportPassthrough, Sized: true, Description: "PNG image"},
	FormatPAL:      {Format: FormatPAL, Extension: "pal", Kind: ExportPassthrough, Description: "JASC palette file"},
	FormatASE:      {Format: FormatASE, Extension: "ase", Kind: ExportPassthrough, Description: "Adobe swatch exchange"},
	FormatGPL:      {Format: FormatGPL, Extension: "gpl", Kind: ExportPassthrough, Description: "GIMP palette"},
	FormatTXT:      {Format: FormatTXT, Extension: "txt", Kind: ExportPassthrough, Description: "Paint.NET palette"},
}

// LookupFormat returns the table entry for f.
func LookupFormat(f Format) (FormatInfo, bool) {
	info, ok := formats[f]
	return info, ok
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := formats[f]; !ok {
		return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// Formats returns all table entries sorted by name.
func Formats() []FormatInfo {
	infos := make([]FormatInfo, 0, len(formats))
	for _, info := range formats {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Format < infos[j].Format })
	return infos
}

// FormatNames returns all format names sorted.
func FormatNames() []string {
	infos := Formats()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = string(info.Format)
	}
	return names
}

// DownloadRequest describes a single palette download.
type DownloadRequest struct {
	Slug   string
	Path   string // Destination file, or directory for structured formats
	Format Format
	Size   int // Raster scale; 0 means DefaultSize. Ignored unless the format is sized.
}

// DownloadURL returns the catalog URL serving the payload for req.
func DownloadURL(baseURL string, req DownloadRequest) (string, error) {
	info, ok := LookupFormat(req.Format)
	if !ok {
		return "", fmt.Errorf("unknown format %q", req.Format)
	}
	name := url.PathEscape(req.Slug)
	if info.Sized {
		size := req.Size
		if size <= 0 {
			size = DefaultSize
		}
		name = fmt.Sprintf("%s-%dx", name, size)
	}
	return fmt.Sprintf("%s/palette-list/%s.%s", trimSlash(baseURL), name, info.Extension), nil
}
