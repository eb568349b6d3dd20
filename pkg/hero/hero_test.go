package hero_test

import (
	"strings"
	"testing"

	"github.com/gnames/watchseed/pkg/catalog"
	"github.com/gnames/watchseed/pkg/hero"
	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		msg  string
		text string
		res  []string
	}{
		{"empty", "", nil},
		{"blank", " \n\t ", nil},
		{"one sentence", "The Speedmaster is a chronograph.",
			[]string{"The Speedmaster is a chronograph."}},
		{
			"collapses whitespace",
			"It went to\nthe Moon.  Really!\n\nWhy? Because",
			[]string{"It went to the Moon.", "Really!", "Why?", "Because"},
		},
		{"no break inside words", "Ref. 2915 was first. v1.0 next.",
			[]string{"Ref.", "2915 was first.", "v1.0 next."}},
		{"no trailing punctuation", "Made in Bienne", []string{"Made in Bienne"}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.res, hero.SplitSentences(v.text))
		})
	}
}

func TestSubline(t *testing.T) {
	long := "The Omega Speedmaster Professional is a manual winding chronograph " +
		"that was flight-qualified by NASA."

	tests := []struct {
		msg      string
		sentence string
		res      string
	}{
		{"short", "  Made in Bienne.  ", "Made in Bienne."},
		{"exactly max", strings.Repeat("a", 80), strings.Repeat("a", 80)},
		{
			"cut at word boundary",
			long,
			"The Omega Speedmaster Professional is a manual winding chronograph that was…",
		},
		{"no spaces", strings.Repeat("b", 81), strings.Repeat("b", 80) + "…"},
		{
			"counts characters not bytes",
			strings.Repeat("ö", 79) + " Söhne",
			strings.Repeat("ö", 79) + "…",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.res, hero.Subline(v.sentence))
		})
	}
}

func TestTitle(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Omega_Speedmaster", hero.Title(catalog.CollectionConfig{
		Name: "Speedmaster", WikipediaTitle: "Omega_Speedmaster",
	}))
	assert.Equal("Black_Bay_58", hero.Title(catalog.CollectionConfig{
		Name: "Black Bay\t58",
	}))
}

func TestForCollection(t *testing.T) {
	assert := assert.New(t)
	eras := []catalog.EraDefinition{
		{Slug: "early"},
		{Slug: "moon"},
		{Slug: ""},
		{Slug: "modern"},
	}
	extract := "The Speedmaster is a chronograph. It went to the Moon in 1969."

	res := hero.ForCollection("Omega_Speedmaster", extract, eras)
	assert.Empty(res.Error)
	assert.Equal("Omega_Speedmaster", res.Title)
	assert.Equal(extract, res.Extract)
	assert.Equal(2, res.Sentences)
	assert.Len(res.Eras, 3)
	assert.Equal(hero.Era{
		Summary:     "The Speedmaster is a chronograph.",
		HeroSubline: "The Speedmaster is a chronograph.",
		Source:      "Wikipedia intro",
	}, res.Eras["early"])
	assert.Equal("It went to the Moon in 1969.", res.Eras["moon"].Summary)
	// fourth era wraps around to the first sentence
	assert.Equal("It went to the Moon in 1969.", res.Eras["modern"].Summary)

	long := strings.Repeat("x", 600)
	res = hero.ForCollection("T", long, []catalog.EraDefinition{{Slug: "a"}})
	assert.Len([]rune(res.Extract), 500)
	assert.Equal(long, res.Eras["a"].Summary)
	assert.Equal(strings.Repeat("x", 80)+"…", res.Eras["a"].HeroSubline)

	res = hero.ForCollection("T", extract, []catalog.EraDefinition{})
	assert.NotNil(res.Eras)
	assert.Empty(res.Eras)
}

func TestStats(t *testing.T) {
	c := hero.New()
	c.ByCollection["a"] = hero.NoEras()
	c.ByCollection["b"] = hero.Missing("B")
	c.ByCollection["c"] = hero.ForCollection("C", "One.", []catalog.EraDefinition{{Slug: "x"}})
	c.ByCollection["d"] = hero.Missing("D")

	fetched, missing := c.Stats()
	assert.Equal(t, 1, fetched)
	assert.Equal(t, 2, missing)
	assert.Equal(t, hero.Description, c.Description)
	assert.Equal(t, "no era list", c.ByCollection["a"].Error)
	assert.Equal(t, "missing or empty extract", c.ByCollection["b"].Error)
}
