// Package seed defines the seed document consumed by the watch-catalog
// front-end and the pure functions that build its records from catalog
// entries and Wikidata entities.
//
// The document has five lists (brands, collections, eras, variants and
// user-owned watches) plus a version tag and a source label. Nullable
// values are pointers and serialize as JSON null. Lists are never nil so
// they serialize as [].
package seed

import "context"

const (
	// Version of the seed document format.
	Version = "1.0"

	// Source describes where the data came from.
	Source = "Wikipedia + Wikidata API (fetched)"
)

// Seeder fetches remote data for a catalog and writes the seed document.
type Seeder interface {
	// Run builds the seed and writes it. Nothing is written if any
	// request fails.
	Run(ctx context.Context) (*Seed, error)
}

// Exporter stores a seed in a relational database.
type Exporter interface {
	Export(ctx context.Context, s *Seed) error
}

// Publisher uploads an encoded seed document to object storage and
// returns its location.
type Publisher interface {
	Publish(ctx context.Context, data []byte) (string, error)
}

// Seed is the complete output document.
type Seed struct {
	Version     string       `json:"version"`
	Source      string       `json:"source"`
	Brands      []Brand      `json:"brands"`
	Collections []Collection `json:"collections"`
	Eras        []Era        `json:"eras"`
	Variants    []Variant    `json:"variants"`

	// UserOwnedWatches is filled by the front-end, the seed always has it
	// empty.
	UserOwnedWatches []any `json:"userOwnedWatches"`
}

// New returns an empty seed with version and source set.
func New() *Seed {
	return &Seed{
		Version:          Version,
		Source:           Source,
		Brands:           []Brand{},
		Collections:      []Collection{},
		Eras:             []Era{},
		Variants:         []Variant{},
		UserOwnedWatches: []any{},
	}
}

// Brand is a watch manufacturer.
type Brand struct {
	ID                 string  `json:"id"`
	Slug               string  `json:"slug"`
	Name               string  `json:"name"`
	NameEn             string  `json:"nameEn"`
	FoundedYear        *int    `json:"foundedYear"`
	Country            *string `json:"country"`
	CountryNameEn      *string `json:"countryNameEn"`
	DescriptionSummary *string `json:"descriptionSummary"`
	WikidataQID        *string `json:"wikidataQid"`
	WikipediaSlug      string  `json:"wikipediaSlug"`
	WikipediaURLEn     string  `json:"wikipediaUrlEn"`
	SortOrder          int     `json:"sortOrder"`
}

// Collection is a product line of a brand.
type Collection struct {
	ID                 string         `json:"id"`
	BrandID            string         `json:"brandId"`
	Slug               string         `json:"slug"`
	Name               string         `json:"name"`
	NameEn             string         `json:"nameEn"`
	Type               *string        `json:"type"`
	IntroducedYear     *int           `json:"introducedYear"`
	DiscontinuedYear   *int           `json:"discontinuedYear"`
	DescriptionSummary *string        `json:"descriptionSummary"`
	WikidataQID        *string        `json:"wikidataQid"`
	WikipediaSlug      string         `json:"wikipediaSlug"`
	WikipediaURLEn     string         `json:"wikipediaUrlEn"`
	CommonsCategory    *string        `json:"commonsCategory"`
	VariantOptions     VariantOptions `json:"variantOptions"`
	SortOrder          int            `json:"sortOrder"`
}

// VariantOptions lists the configurable properties of a collection. The
// seed leaves all of them empty.
type VariantOptions struct {
	Materials     []string  `json:"materials"`
	CaseSizesMm   []float64 `json:"caseSizesMm"`
	MovementTypes []string  `json:"movementTypes"`
	BraceletStrap []string  `json:"braceletStrap"`
}

// Era is a named period of a collection's production history.
type Era struct {
	ID           string   `json:"id"`
	CollectionID string   `json:"collectionId"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	NameEn       *string  `json:"nameEn"`
	StartYear    int      `json:"startYear"`
	EndYear      *int     `json:"endYear"`
	Summary      *string  `json:"summary"`
	KeyFacts     []string `json:"keyFacts"`
	Events       []Event  `json:"events"`
	SortOrder    int      `json:"sortOrder"`
}

// Event is a dated milestone inside an era.
type Event struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
}

// Variant is a model configuration inside an era. The seed contains only
// placeholders.
type Variant struct {
	ID               string   `json:"id"`
	EraID            string   `json:"eraId"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	NameEn           string   `json:"nameEn"`
	MovementType     *string  `json:"movementType"`
	Caliber          *string  `json:"caliber"`
	CaseSizeMm       *float64 `json:"caseSizeMm"`
	CaseMaterial     *string  `json:"caseMaterial"`
	WaterResistanceM *int     `json:"waterResistanceM"`
	Crystal          *string  `json:"crystal"`
	Bezel            *string  `json:"bezel"`
	BraceletStrap    []string `json:"braceletStrap"`
	DialColor        *string  `json:"dialColor"`
	KeyFacts         []string `json:"keyFacts"`
	WikidataQID      *string  `json:"wikidataQid"`
	ImageSource      *string  `json:"imageSource"`
	SortOrder        int      `json:"sortOrder"`
}

// Stats holds record counts of a seed.
type Stats struct {
	Brands      int
	Collections int
	Eras        int
	Variants    int
}

// Stats counts records of every kind.
func (s *Seed) Stats() Stats {
	return Stats{
		Brands:      len(s.Brands),
		Collections: len(s.Collections),
		Eras:        len(s.Eras),
		Variants:    len(s.Variants),
	}
}
