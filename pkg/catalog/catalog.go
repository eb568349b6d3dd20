// Package catalog defines the inputs of a watchseed run: the catalog of
// brands and collections to resolve, the manually curated override tables,
// and the hand-authored era definitions.
//
// Inputs are plain documents (JSON, or YAML when the file has a .yaml/.yml
// extension). The catalog is required, overrides and era definitions are
// optional.
package catalog

// Loader reads all inputs of a run.
type Loader interface {
	Load() (*Input, error)
}

// Input bundles everything a run needs from the filesystem.
type Input struct {
	Catalog        *Catalog
	Overrides      *Overrides
	EraDefinitions EraDefinitions

	// Warnings holds non-fatal issues found while loading optional files.
	Warnings []string
}

// Catalog lists the entities to resolve. Order matters: it defines the
// sortOrder of brands and collections.
type Catalog struct {
	Brands      []BrandConfig      `json:"brands"      yaml:"brands"`
	Collections []CollectionConfig `json:"collections" yaml:"collections"`
}

// BrandConfig describes one brand.
type BrandConfig struct {
	// ID is the brand identifier referenced by collections.
	ID   string `json:"id"   yaml:"id"`
	Slug string `json:"slug" yaml:"slug"`
	Name string `json:"name" yaml:"name"`

	// WikipediaTitle is the English Wikipedia article title, with
	// underscores or spaces.
	WikipediaTitle string `json:"wikipediaTitle" yaml:"wikipediaTitle"`
}

// CollectionConfig describes one collection (product line) of a brand.
type CollectionConfig struct {
	Slug           string `json:"slug"           yaml:"slug"`
	BrandID        string `json:"brandId"        yaml:"brandId"`
	Name           string `json:"name"           yaml:"name"`
	WikipediaTitle string `json:"wikipediaTitle" yaml:"wikipediaTitle"`

	// WikidataQIDOverride bypasses title lookup and search when set.
	WikidataQIDOverride string `json:"wikidataQidOverride,omitempty" yaml:"wikidataQidOverride,omitempty"`
}

// Overrides patch values that Wikidata does not provide. Both maps are
// keyed by collection slug.
type Overrides struct {
	IntroducedYear map[string]int    `json:"introducedYear" yaml:"introducedYear"`
	Type           map[string]string `json:"type"           yaml:"type"`
}

// IntroducedYearFor returns the introduced year override of a collection.
func (o *Overrides) IntroducedYearFor(slug string) *int {
	if o == nil {
		return nil
	}
	if y, ok := o.IntroducedYear[slug]; ok {
		return &y
	}
	return nil
}

// TypeFor returns the type override of a collection.
func (o *Overrides) TypeFor(slug string) *string {
	if o == nil {
		return nil
	}
	if t, ok := o.Type[slug]; ok && t != "" {
		return &t
	}
	return nil
}

// EraDefinitions maps a collection slug to its hand-authored eras, in
// display order.
type EraDefinitions map[string][]EraDefinition

// EraDefinition is one hand-authored era of a collection.
type EraDefinition struct {
	Slug      string   `json:"slug"      yaml:"slug"`
	Name      string   `json:"name"      yaml:"name"`
	NameEn    *string  `json:"nameEn"    yaml:"nameEn"`
	StartYear int      `json:"startYear" yaml:"startYear"`
	EndYear   *int     `json:"endYear"   yaml:"endYear"`
	Summary   *string  `json:"summary"   yaml:"summary"`
	KeyFacts  []string `json:"keyFacts"  yaml:"keyFacts"`
	Events    []Event  `json:"events"    yaml:"events"`
}

// Event is a dated milestone inside an era.
type Event struct {
	Year  int    `json:"year"  yaml:"year"`
	Label string `json:"label" yaml:"label"`
}
