package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Validate checks that the catalog is internally consistent: every entity
// has the fields needed to build its record, identifiers are unique and
// every collection references a known brand. An empty catalog is valid.
func (c *Catalog) Validate() error {
	if len(c.Brands) == 0 && len(c.Collections) > 0 {
		return fmt.Errorf("no brands specified for %d collections", len(c.Collections))
	}

	brands := make(map[string]struct{}, len(c.Brands))
	for i, b := range c.Brands {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("brand %d: %w", i+1, err)
		}
		if _, ok := brands[b.ID]; ok {
			return fmt.Errorf("brand %d: duplicate id '%s'", i+1, b.ID)
		}
		brands[b.ID] = struct{}{}
	}

	slugs := make(map[string]struct{}, len(c.Collections))
	for i, cl := range c.Collections {
		if err := cl.Validate(); err != nil {
			return fmt.Errorf("collection %d: %w", i+1, err)
		}
		if _, ok := brands[cl.BrandID]; !ok {
			return fmt.Errorf(
				"collection %d (%s): unknown brandId '%s'", i+1, cl.Slug, cl.BrandID,
			)
		}
		if _, ok := slugs[cl.Slug]; ok {
			return fmt.Errorf("collection %d: duplicate slug '%s'", i+1, cl.Slug)
		}
		slugs[cl.Slug] = struct{}{}
	}

	return nil
}

// Validate checks required fields of a brand.
func (b *BrandConfig) Validate() error {
	switch {
	case strings.TrimSpace(b.ID) == "":
		return fmt.Errorf("id is required")
	case strings.TrimSpace(b.Slug) == "":
		return fmt.Errorf("slug is required")
	case strings.TrimSpace(b.Name) == "":
		return fmt.Errorf("name is required")
	case strings.TrimSpace(b.WikipediaTitle) == "":
		return fmt.Errorf("wikipediaTitle is required")
	}
	return nil
}

// Validate checks required fields of a collection.
func (c *CollectionConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Slug) == "":
		return fmt.Errorf("slug is required")
	case strings.TrimSpace(c.BrandID) == "":
		return fmt.Errorf("brandId is required")
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("name is required")
	case strings.TrimSpace(c.WikipediaTitle) == "":
		return fmt.Errorf("wikipediaTitle is required")
	}
	return nil
}

// SlugTail returns the part of an era slug after its last '-'. Placeholder
// variant ids are built from it.
func SlugTail(slug string) string {
	if idx := strings.LastIndex(slug, "-"); idx > -1 {
		return slug[idx+1:]
	}
	return slug
}

// Validate returns warnings for era definitions that cannot produce a
// usable era. Definitions of unknown collections are reported too, they
// are ignored during the run. Eras of one collection whose slugs end with
// the same segment would give their variants the same id.
func (e EraDefinitions) Validate(c *Catalog) []string {
	var res []string
	known := make(map[string]struct{}, len(c.Collections))
	for _, cl := range c.Collections {
		known[cl.Slug] = struct{}{}
	}
	for _, slug := range slices.Sorted(maps.Keys(e)) {
		defs := e[slug]
		if _, ok := known[slug]; !ok {
			res = append(res,
				fmt.Sprintf("era definitions for unknown collection '%s'", slug))
			continue
		}
		tails := make(map[string]string, len(defs))
		for i, d := range defs {
			if strings.TrimSpace(d.Slug) == "" {
				res = append(res,
					fmt.Sprintf("era %d of '%s' has no slug", i+1, slug))
				continue
			}
			tail := SlugTail(d.Slug)
			if prev, ok := tails[tail]; ok {
				res = append(res, fmt.Sprintf(
					"eras '%s' and '%s' of '%s' give the same variant id 'var-%s-%s'",
					prev, d.Slug, slug, slug, tail,
				))
				continue
			}
			tails[tail] = d.Slug
		}
	}
	return res
}
