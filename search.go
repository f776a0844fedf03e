package lospec

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filter restricts search results by number of colors.
// The set of implementations is closed: AnyColors, MaxColors, MinColors and
// ExactColors.
type Filter interface {
	// filterType returns the catalog's colorNumberFilterType value.
	filterType() string
}

// countFilter is implemented by filters that carry a color count.
type countFilter interface {
	colorNumber() uint16
}

// AnyColors matches palettes of any size.
type AnyColors struct{}

// MaxColors matches palettes with at most N colors.
type MaxColors uint16

// MinColors matches palettes with at least N colors.
type MinColors uint16

// ExactColors matches palettes with exactly N colors.
type ExactColors uint16

func (AnyColors) filterType() string   { return "any" }
func (MaxColors) filterType() string   { return "max" }
func (MinColors) filterType() string   { return "min" }
func (ExactColors) filterType() string { return "exact" }

func (f MaxColors) colorNumber() uint16   { return uint16(f) }
func (f MinColors) colorNumber() uint16   { return uint16(f) }
func (f ExactColors) colorNumber() uint16 { return uint16(f) }

// Sorting is the order in which the catalog returns results.
type Sorting int

// Sorting modes.
const (
	SortDefault Sorting = iota
	SortAlphabetical
	SortDownloads
	SortNewest
)

// String returns the catalog's sortingType value.
func (s Sorting) String() string {
	switch s {
	case SortAlphabetical:
		return "alphabetical"
	case SortDownloads:
		return "downloads"
	case SortNewest:
		return "newest"
	default:
		return "default"
	}
}

// SortingNames lists the values accepted by ParseSorting, in display order.
var SortingNames = []string{"default", "az", "downloads", "newest"}

// ParseSorting parses a sorting mode. "az" and "alphabetical" are synonyms.
func ParseSorting(s string) (Sorting, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return SortDefault, nil
	case "az", "alphabetical":
		return SortAlphabetical, nil
	case "downloads":
		return SortDownloads, nil
	case "newest":
		return SortNewest, nil
	default:
		return SortDefault, fmt.Errorf("unknown sorting %q (want one of %s)", s, strings.Join(SortingNames, ", "))
	}
}

// SearchRequest describes a single page of catalog search results.
type SearchRequest struct {
	Filter  Filter // nil is treated as AnyColors
	Sorting Sorting
	Tag     string // Empty for no tag filter
	Page    int    // 1-based
}

// QueryParam is a single key/value pair of a catalog query string.
type QueryParam struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters.
type Query []QueryParam

// Get returns the first value for key and whether it was present.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders the query as a URL-encoded string, preserving order.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Query converts the request to the catalog's query-parameter vocabulary.
// colorNumber is emitted only for filters that carry a count.
func (r SearchRequest) Query() Query {
	page := r.Page
	if page < 1 {
		page = 1
	}
	filter := r.Filter
	if filter == nil {
		filter = AnyColors{}
	}

	q := Query{
		{Key: "page", Value: strconv.Itoa(page)},
		{Key: "sortingType", Value: r.Sorting.String()},
		{Key: "tag", Value: r.Tag},
		{Key: "colorNumberFilterType", Value: filter.filterType()},
	}
	if cf, ok := filter.(countFilter); ok {
		q = append(q, QueryParam{Key: "colorNumber", Value: strconv.Itoa(int(cf.colorNumber()))})
	}
	return q
}
