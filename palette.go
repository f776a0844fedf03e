package lospec

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// User is the catalog account a palette is attributed to.
type User struct {
	Name string
	Slug string
}

// Palette represents a single catalog entry.
type Palette struct {
	ID          string
	Slug        string // URL-safe identifier, also the download key
	Title       string
	Tags        []string
	Colors      []Color // Visual order, also the order written to flat files
	User        *User   // nil when the palette has no attributed author
	CreatedAt   time.Time
	PublishedAt time.Time
}

// PaletteList is one page of search results in catalog order.
type PaletteList []Palette

// Wire shapes of the catalog's search response.
type (
	wireEnvelope struct {
		Palettes *[]wirePalette `json:"palettes"`
	}

	wirePalette struct {
		ID          string    `json:"_id"`
		Tags        []string  `json:"tags"`
		Colors      []string  `json:"colors"`
		Title       string    `json:"title"`
		Slug        string    `json:"slug"`
		PublishedAt string    `json:"publishedAt"`
		CreatedAt   string    `json:"createdAt"`
		User        *wireUser `json:"user"`
	}

	wireUser struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
)

var errMissingPalettes = errors.New("missing palettes array")

// DecodePalettes decodes the catalog's `{"palettes": [...]}` search response.
// Returns a *DecodeError naming the offending field if the envelope, a
// timestamp or a color token is malformed.
func DecodePalettes(data []byte) (PaletteList, error) {
	var env wireEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if env.Palettes == nil {
		return nil, &DecodeError{Field: "palettes", Err: errMissingPalettes}
	}

	list := make(PaletteList, 0, len(*env.Palettes))
	for i, wp := range *env.Palettes {
		p, err := wp.decode(fmt.Sprintf("palettes[%d]", i))
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func (wp wirePalette) decode(field string) (Palette, error) {
	colors := make([]Color, 0, len(wp.Colors))
	for i, token := range wp.Colors {
		c, err := ParseColor(token)
		if err != nil {
			return Palette{}, &DecodeError{
				Field: fmt.Sprintf("%s.colors[%d]", field, i),
				Token: token,
				Err:   err,
			}
		}
		colors = append(colors, c)
	}

	publishedAt, err := parseTimestamp(wp.PublishedAt)
	if err != nil {
		return Palette{}, &DecodeError{Field: field + ".publishedAt", Token: wp.PublishedAt, Err: err}
	}
	createdAt, err := parseTimestamp(wp.CreatedAt)
	if err != nil {
		return Palette{}, &DecodeError{Field: field + ".createdAt", Token: wp.CreatedAt, Err: err}
	}

	var user *User
	if wp.User != nil {
		user = &User{Name: wp.User.Name, Slug: wp.User.Slug}
	}

	return Palette{
		ID:          wp.ID,
		Slug:        wp.Slug,
		Title:       wp.Title,
		Tags:        wp.Tags,
		Colors:      colors,
		User:        user,
		CreatedAt:   createdAt,
		PublishedAt: publishedAt,
	}, nil
}

// parseTimestamp parses an ISO-8601 instant and normalizes it to UTC.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
