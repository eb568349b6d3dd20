// Package hero maps Wikipedia article intros of collections to their eras.
// The result gives the front-end a summary sentence and a short subline
// for the hero block of every era.
//
// Sentences are assigned to eras in order and wrap around when a
// collection has more eras than its intro has sentences.
package hero

import (
	"context"
	"strings"
	"unicode"

	"github.com/gnames/watchseed/pkg/catalog"
)

const (
	// Description of the hero content document.
	Description = "Wikipedia intro extracts per collection, mapped to era slugs for hero content."

	// Source labels every era entry.
	Source = "Wikipedia intro"

	// ErrNoEras marks a collection without an era list. No request is made
	// for it.
	ErrNoEras = "no era list"

	// ErrNoExtract marks a collection whose article is missing or has no
	// intro.
	ErrNoExtract = "missing or empty extract"

	// SublineLen is the maximum number of characters of a subline before
	// the ellipsis.
	SublineLen = 80

	// ExtractLen is the maximum number of characters of the stored intro.
	ExtractLen = 500

	// fallbackLen limits the summary taken from an intro without sentence
	// breaks.
	fallbackLen = 200
)

// Fetcher loads article intros for every collection of the catalog and
// writes the hero content document.
type Fetcher interface {
	// Run builds and writes hero content. Nothing is written if any
	// request fails.
	Run(ctx context.Context) (*Content, error)
}

// Content is the hero content document.
type Content struct {
	Description  string                `json:"description"`
	ByCollection map[string]Collection `json:"byCollection"`
}

// Collection holds the intro of one collection and its eras. Error is set
// instead of the intro when nothing could be mapped.
type Collection struct {
	Error     string         `json:"error,omitempty"`
	Title     string         `json:"title,omitempty"`
	Extract   string         `json:"extract,omitempty"`
	Sentences int            `json:"sentences,omitempty"`
	Eras      map[string]Era `json:"eras"`
}

// Era is the hero text of one era.
type Era struct {
	Summary     string `json:"summary"`
	HeroSubline string `json:"heroSubline"`
	Source      string `json:"source"`
}

// New creates an empty hero content document.
func New() *Content {
	return &Content{
		Description:  Description,
		ByCollection: make(map[string]Collection),
	}
}

// Stats returns the number of collections with mapped eras and the number
// of collections whose intro was missing.
func (c *Content) Stats() (fetched, missing int) {
	for _, v := range c.ByCollection {
		switch v.Error {
		case "":
			fetched++
		case ErrNoExtract:
			missing++
		}
	}
	return fetched, missing
}

// Title returns the article title of a collection. Without a configured
// title the name is used with whitespace replaced by '_'.
func Title(cc catalog.CollectionConfig) string {
	if cc.WikipediaTitle != "" {
		return cc.WikipediaTitle
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, cc.Name)
}

// NoEras returns the entry of a collection without an era list.
func NoEras() Collection {
	return Collection{Error: ErrNoEras, Eras: map[string]Era{}}
}

// Missing returns the entry of a collection whose intro is missing or
// empty.
func Missing(title string) Collection {
	return Collection{Error: ErrNoExtract, Title: title, Eras: map[string]Era{}}
}

// ForCollection maps sentences of an intro to eras. Era i gets sentence
// i modulo the number of sentences. Eras without a slug are skipped.
func ForCollection(
	title, extract string,
	eras []catalog.EraDefinition,
) Collection {
	sentences := SplitSentences(extract)
	byEra := make(map[string]Era, len(eras))
	for i, era := range eras {
		if strings.TrimSpace(era.Slug) == "" {
			continue
		}
		var sent string
		if len(sentences) > 0 {
			sent = sentences[i%len(sentences)]
		} else {
			sent = truncate(extract, fallbackLen)
		}
		byEra[era.Slug] = Era{
			Summary:     sent,
			HeroSubline: Subline(sent),
			Source:      Source,
		}
	}
	return Collection{
		Title:     title,
		Extract:   truncate(extract, ExtractLen),
		Sentences: len(sentences),
		Eras:      byEra,
	}
}

// SplitSentences collapses whitespace and splits text after '.', '!' or
// '?' followed by whitespace.
func SplitSentences(text string) []string {
	var res []string
	var words []string
	for _, w := range strings.Fields(text) {
		words = append(words, w)
		if strings.ContainsAny(w[len(w)-1:], ".!?") {
			res = append(res, strings.Join(words, " "))
			words = words[:0]
		}
	}
	if len(words) > 0 {
		res = append(res, strings.Join(words, " "))
	}
	return res
}

// Subline shortens a sentence to SublineLen characters. A longer sentence
// is cut at the last word boundary and gets an ellipsis.
func Subline(sentence string) string {
	s := strings.TrimSpace(sentence)
	rs := []rune(s)
	if len(rs) <= SublineLen {
		return s
	}
	s = string(rs[:SublineLen])
	if idx := strings.LastIndexFunc(s, unicode.IsSpace); idx > -1 {
		s = strings.TrimRightFunc(s[:idx], unicode.IsSpace)
	}
	return s + "…"
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
