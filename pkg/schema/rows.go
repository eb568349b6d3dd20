package schema

import (
	"database/sql"

	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/pkg/seed"
)

// Rows holds a seed converted to table rows.
type Rows struct {
	Brands      []Brand
	Collections []Collection
	Eras        []Era
	EraEvents   []EraEvent
	Variants    []Variant
}

// Table is a generic view of the rows of one table.
type Table struct {
	Name    string
	Columns []string
	Values  [][]any
}

// FromSeed converts seed records to rows. Lists are stored as JSON text.
func FromSeed(s *seed.Seed) (*Rows, error) {
	var err error
	res := Rows{
		Brands:      make([]Brand, 0, len(s.Brands)),
		Collections: make([]Collection, 0, len(s.Collections)),
		Eras:        make([]Era, 0, len(s.Eras)),
		Variants:    make([]Variant, 0, len(s.Variants)),
	}

	for _, b := range s.Brands {
		res.Brands = append(res.Brands, Brand{
			ID:                 b.ID,
			Slug:               b.Slug,
			Name:               b.Name,
			NameEn:             b.NameEn,
			FoundedYear:        nullInt(b.FoundedYear),
			Country:            nullStr(b.Country),
			CountryNameEn:      nullStr(b.CountryNameEn),
			DescriptionSummary: nullStr(b.DescriptionSummary),
			WikidataQID:        nullStr(b.WikidataQID),
			WikipediaSlug:      b.WikipediaSlug,
			WikipediaURLEn:     b.WikipediaURLEn,
			SortOrder:          b.SortOrder,
		})
	}

	for _, c := range s.Collections {
		row := Collection{
			ID:                 c.ID,
			BrandID:            c.BrandID,
			Slug:               c.Slug,
			Name:               c.Name,
			NameEn:             c.NameEn,
			Type:               nullStr(c.Type),
			IntroducedYear:     nullInt(c.IntroducedYear),
			DiscontinuedYear:   nullInt(c.DiscontinuedYear),
			DescriptionSummary: nullStr(c.DescriptionSummary),
			WikidataQID:        nullStr(c.WikidataQID),
			WikipediaSlug:      c.WikipediaSlug,
			WikipediaURLEn:     c.WikipediaURLEn,
			CommonsCategory:    nullStr(c.CommonsCategory),
			SortOrder:          c.SortOrder,
		}
		if row.VariantOptions, err = jsonText(c.VariantOptions); err != nil {
			return nil, err
		}
		res.Collections = append(res.Collections, row)
	}

	for _, e := range s.Eras {
		row := Era{
			ID:           e.ID,
			CollectionID: e.CollectionID,
			Slug:         e.Slug,
			Name:         e.Name,
			NameEn:       nullStr(e.NameEn),
			StartYear:    e.StartYear,
			EndYear:      nullInt(e.EndYear),
			Summary:      nullStr(e.Summary),
			SortOrder:    e.SortOrder,
		}
		if row.KeyFacts, err = jsonText(e.KeyFacts); err != nil {
			return nil, err
		}
		res.Eras = append(res.Eras, row)

		for i, ev := range e.Events {
			res.EraEvents = append(res.EraEvents, EraEvent{
				EraID:    e.ID,
				Position: i + 1,
				Year:     ev.Year,
				Label:    ev.Label,
			})
		}
	}

	for _, v := range s.Variants {
		row := Variant{
			ID:               v.ID,
			EraID:            v.EraID,
			Slug:             v.Slug,
			Name:             v.Name,
			NameEn:           v.NameEn,
			MovementType:     nullStr(v.MovementType),
			Caliber:          nullStr(v.Caliber),
			CaseSizeMm:       nullFloat(v.CaseSizeMm),
			CaseMaterial:     nullStr(v.CaseMaterial),
			WaterResistanceM: nullInt(v.WaterResistanceM),
			Crystal:          nullStr(v.Crystal),
			Bezel:            nullStr(v.Bezel),
			DialColor:        nullStr(v.DialColor),
			WikidataQID:      nullStr(v.WikidataQID),
			ImageSource:      nullStr(v.ImageSource),
			SortOrder:        v.SortOrder,
		}
		if row.BraceletStrap, err = jsonText(v.BraceletStrap); err != nil {
			return nil, err
		}
		if row.KeyFacts, err = jsonText(v.KeyFacts); err != nil {
			return nil, err
		}
		res.Variants = append(res.Variants, row)
	}

	return &res, nil
}

// Tables returns rows grouped by table in dependency order.
func (r *Rows) Tables() []Table {
	return []Table{
		table(Brand{}, r.Brands),
		table(Collection{}, r.Collections),
		table(Era{}, r.Eras),
		table(EraEvent{}, r.EraEvents),
		table(Variant{}, r.Variants),
	}
}

// Count returns the total number of rows.
func (r *Rows) Count() int {
	return len(r.Brands) + len(r.Collections) + len(r.Eras) +
		len(r.EraEvents) + len(r.Variants)
}

func table[T DDLGenerator](model T, rows []T) Table {
	res := Table{
		Name:    model.TableName(),
		Columns: Columns(model),
		Values:  make([][]any, len(rows)),
	}
	for i := range rows {
		res.Values[i] = Values(rows[i])
	}
	return res
}

func jsonText(v any) (string, error) {
	enc := gnfmt.GNjson{}
	bs, err := enc.Encode(v)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
