package seed

import (
	"fmt"
	"strings"

	"github.com/gnames/watchseed/pkg/catalog"
	"github.com/gnames/watchseed/pkg/wikidata"
)

const (
	collectionPrefix = "coll-"

	// DefaultStartYear is the start of a fallback era when the introduced
	// year of a collection is unknown.
	DefaultStartYear = 1900

	// PlaceholderName is the name of every generated variant.
	PlaceholderName = "代表モデル（要補足）"

	// PlaceholderNameEn is the English name of every generated variant.
	PlaceholderNameEn = "Representative (to be filled)"
)

// Builder assembles brand and collection records. ArticleURL is the
// prefix of English Wikipedia article links.
type Builder struct {
	ArticleURL string
}

// NewBuilder creates a Builder.
func NewBuilder(articleURL string) *Builder {
	return &Builder{ArticleURL: articleURL}
}

// Brand builds a brand record. Without an entity all Wikidata-derived
// fields are null. The country name is resolved by the caller because it
// needs another request.
func (b *Builder) Brand(
	cfg catalog.BrandConfig,
	qid string,
	e *wikidata.Entity,
	countryName *string,
	sortOrder int,
) Brand {
	res := Brand{
		ID:             cfg.ID,
		Slug:           cfg.Slug,
		Name:           cfg.Name,
		NameEn:         cfg.Name,
		WikidataQID:    strPtr(qid),
		WikipediaSlug:  wikipediaSlug(cfg.WikipediaTitle),
		WikipediaURLEn: b.ArticleURL + cfg.WikipediaTitle,
		SortOrder:      sortOrder,
	}
	if e.IsMissing() {
		return res
	}

	res.FoundedYear = wikidata.ParseYear(e.Claims[wikidata.PropInception])
	res.Country = wikidata.Country(e)
	if res.Country != nil {
		res.CountryNameEn = countryName
	}
	if label := wikidata.Label(e); label != "" {
		res.NameEn = label
	}
	return res
}

// Collection builds a collection record. The type and introduced year
// start from the overrides and are replaced by Wikidata values when the
// entity provides them. A likely wrong entity keeps the catalog name and
// loses its Commons category.
func (b *Builder) Collection(
	cfg catalog.CollectionConfig,
	qid string,
	e *wikidata.Entity,
	overrides *catalog.Overrides,
	sortOrder int,
) Collection {
	res := Collection{
		ID:             collectionPrefix + cfg.Slug,
		BrandID:        cfg.BrandID,
		Slug:           cfg.Slug,
		Name:           cfg.Name,
		NameEn:         cfg.Name,
		Type:           overrides.TypeFor(cfg.Slug),
		IntroducedYear: overrides.IntroducedYearFor(cfg.Slug),
		WikidataQID:    strPtr(qid),
		WikipediaSlug:  wikipediaSlug(cfg.WikipediaTitle),
		WikipediaURLEn: b.ArticleURL + cfg.WikipediaTitle,
		VariantOptions: VariantOptions{
			Materials:     []string{},
			CaseSizesMm:   []float64{},
			MovementTypes: []string{},
			BraceletStrap: []string{},
		},
		SortOrder: sortOrder,
	}
	if e.IsMissing() {
		return res
	}

	if y := wikidata.ParseYear(e.Claims[wikidata.PropInception]); y != nil {
		res.IntroducedYear = y
	}
	res.DiscontinuedYear = wikidata.ParseYear(e.Claims[wikidata.PropDiscontinued])
	if res.DiscontinuedYear == nil {
		res.DiscontinuedYear = wikidata.ParseYear(e.Claims[wikidata.PropDissolved])
	}
	if tp := wikidata.SubclassType(e); tp != "" {
		res.Type = &tp
	}

	if wikidata.IsLikelyWrongEntity(e) {
		return res
	}
	res.CommonsCategory = wikidata.CommonsCategory(e)
	if label := wikidata.Label(e); label != "" {
		res.NameEn = label
	}
	return res
}

// EraFromDefinition copies a hand-authored era definition into an era of
// the collection.
func EraFromDefinition(
	coll Collection,
	def catalog.EraDefinition,
	sortOrder int,
) Era {
	res := Era{
		ID:           "era-" + coll.Slug + "-" + def.Slug,
		CollectionID: coll.ID,
		Slug:         coll.Slug + "-" + def.Slug,
		Name:         def.Name,
		NameEn:       def.NameEn,
		StartYear:    def.StartYear,
		EndYear:      def.EndYear,
		Summary:      def.Summary,
		KeyFacts:     []string{},
		Events:       []Event{},
		SortOrder:    sortOrder,
	}
	if len(def.KeyFacts) > 0 {
		res.KeyFacts = append(res.KeyFacts, def.KeyFacts...)
	}
	for _, ev := range def.Events {
		res.Events = append(res.Events, Event{Year: ev.Year, Label: ev.Label})
	}
	return res
}

// EraFallback synthesizes the single era of a collection without
// definitions. It spans from the introduced year (or DefaultStartYear) to
// the discontinued year, or is open-ended when the collection is still
// produced.
func EraFallback(coll Collection, sortOrder int) Era {
	start := DefaultStartYear
	if coll.IntroducedYear != nil {
		start = *coll.IntroducedYear
	}
	end := coll.DiscontinuedYear

	name := fmt.Sprintf("%d年〜現在", start)
	nameEn := fmt.Sprintf("%d-present", start)
	if end != nil {
		name = fmt.Sprintf("%d年〜%d年", start, *end)
		nameEn = fmt.Sprintf("%d-%d", start, *end)
	}

	return Era{
		ID:           "era-" + coll.Slug + "-main",
		CollectionID: coll.ID,
		Slug:         coll.Slug + "-main",
		Name:         name,
		NameEn:       &nameEn,
		StartYear:    start,
		EndYear:      end,
		KeyFacts:     []string{},
		Events:       []Event{},
		SortOrder:    sortOrder,
	}
}

// Eras returns eras of a collection: one per definition when definitions
// exist, otherwise exactly one fallback era.
func Eras(coll Collection, defs []catalog.EraDefinition) []Era {
	if len(defs) == 0 {
		return []Era{EraFallback(coll, 1)}
	}
	res := make([]Era, len(defs))
	for i, def := range defs {
		res[i] = EraFromDefinition(coll, def, i+1)
	}
	return res
}

// VariantPlaceholder builds the stub variant of an era. All descriptive
// fields are null or empty.
func VariantPlaceholder(era Era, sortOrder int) Variant {
	coll := strings.TrimPrefix(era.CollectionID, collectionPrefix)
	seg := catalog.SlugTail(era.Slug)
	return Variant{
		ID:            "var-" + coll + "-" + seg,
		EraID:         era.ID,
		Slug:          coll + "-" + seg + "-rep",
		Name:          PlaceholderName,
		NameEn:        PlaceholderNameEn,
		BraceletStrap: []string{},
		KeyFacts:      []string{},
		SortOrder:     sortOrder,
	}
}

func wikipediaSlug(title string) string {
	return strings.ReplaceAll(title, "_", " ")
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// AddEras appends the eras of a collection to the seed together with one
// placeholder variant per era.
func (s *Seed) AddEras(coll Collection, defs []catalog.EraDefinition) {
	for _, era := range Eras(coll, defs) {
		s.Eras = append(s.Eras, era)
		s.Variants = append(s.Variants, VariantPlaceholder(era, 1))
	}
}
