// Package schema provides relational table models for exporting a seed.
// The same models describe SQLite tables (DDL from struct tags) and
// PostgreSQL tables (GORM AutoMigrate).
package schema

import (
	"database/sql"
)

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Brand is a row of the brands table.
type Brand struct {
	ID                 string         `db:"id"                  ddl:"VARCHAR(255) PRIMARY KEY" gorm:"column:id;type:varchar(255);primaryKey"`
	Slug               string         `db:"slug"                ddl:"VARCHAR(255) NOT NULL"    gorm:"column:slug;type:varchar(255);not null"`
	Name               string         `db:"name"                ddl:"TEXT NOT NULL"            gorm:"column:name;type:text;not null"`
	NameEn             string         `db:"name_en"             ddl:"TEXT NOT NULL"            gorm:"column:name_en;type:text;not null"`
	FoundedYear        sql.NullInt64  `db:"founded_year"        ddl:"INTEGER"                  gorm:"column:founded_year;type:integer"`
	Country            sql.NullString `db:"country"             ddl:"VARCHAR(50)"              gorm:"column:country;type:varchar(50)"`
	CountryNameEn      sql.NullString `db:"country_name_en"     ddl:"TEXT"                     gorm:"column:country_name_en;type:text"`
	DescriptionSummary sql.NullString `db:"description_summary" ddl:"TEXT"                     gorm:"column:description_summary;type:text"`
	WikidataQID        sql.NullString `db:"wikidata_qid"        ddl:"VARCHAR(50)"              gorm:"column:wikidata_qid;type:varchar(50)"`
	WikipediaSlug      string         `db:"wikipedia_slug"      ddl:"TEXT NOT NULL"            gorm:"column:wikipedia_slug;type:text;not null"`
	WikipediaURLEn     string         `db:"wikipedia_url_en"    ddl:"TEXT NOT NULL"            gorm:"column:wikipedia_url_en;type:text;not null"`
	SortOrder          int            `db:"sort_order"          ddl:"INTEGER NOT NULL"         gorm:"column:sort_order;type:integer;not null"`
}

// Collection is a row of the collections table.
type Collection struct {
	ID                 string         `db:"id"                  ddl:"VARCHAR(255) PRIMARY KEY"                     gorm:"column:id;type:varchar(255);primaryKey"`
	BrandID            string         `db:"brand_id"            ddl:"VARCHAR(255) NOT NULL REFERENCES brands(id)" gorm:"column:brand_id;type:varchar(255);not null"`
	Slug               string         `db:"slug"                ddl:"VARCHAR(255) NOT NULL"                        gorm:"column:slug;type:varchar(255);not null"`
	Name               string         `db:"name"                ddl:"TEXT NOT NULL"                                gorm:"column:name;type:text;not null"`
	NameEn             string         `db:"name_en"             ddl:"TEXT NOT NULL"                                gorm:"column:name_en;type:text;not null"`
	Type               sql.NullString `db:"type"                ddl:"VARCHAR(50)"                                  gorm:"column:type;type:varchar(50)"`
	IntroducedYear     sql.NullInt64  `db:"introduced_year"     ddl:"INTEGER"                                      gorm:"column:introduced_year;type:integer"`
	DiscontinuedYear   sql.NullInt64  `db:"discontinued_year"   ddl:"INTEGER"                                      gorm:"column:discontinued_year;type:integer"`
	DescriptionSummary sql.NullString `db:"description_summary" ddl:"TEXT"                                         gorm:"column:description_summary;type:text"`
	WikidataQID        sql.NullString `db:"wikidata_qid"        ddl:"VARCHAR(50)"                                  gorm:"column:wikidata_qid;type:varchar(50)"`
	WikipediaSlug      string         `db:"wikipedia_slug"      ddl:"TEXT NOT NULL"                                gorm:"column:wikipedia_slug;type:text;not null"`
	WikipediaURLEn     string         `db:"wikipedia_url_en"    ddl:"TEXT NOT NULL"                                gorm:"column:wikipedia_url_en;type:text;not null"`
	CommonsCategory    sql.NullString `db:"commons_category"    ddl:"TEXT"                                         gorm:"column:commons_category;type:text"`

	// VariantOptions is the JSON object of option lists.
	VariantOptions string `db:"variant_options" ddl:"TEXT NOT NULL" gorm:"column:variant_options;type:text;not null"`

	SortOrder int `db:"sort_order" ddl:"INTEGER NOT NULL" gorm:"column:sort_order;type:integer;not null"`
}

// Era is a row of the eras table. Events are kept in era_events.
type Era struct {
	ID           string         `db:"id"            ddl:"VARCHAR(255) PRIMARY KEY"                          gorm:"column:id;type:varchar(255);primaryKey"`
	CollectionID string         `db:"collection_id" ddl:"VARCHAR(255) NOT NULL REFERENCES collections(id)" gorm:"column:collection_id;type:varchar(255);not null"`
	Slug         string         `db:"slug"          ddl:"VARCHAR(255) NOT NULL"                             gorm:"column:slug;type:varchar(255);not null"`
	Name         string         `db:"name"          ddl:"TEXT NOT NULL"                                     gorm:"column:name;type:text;not null"`
	NameEn       sql.NullString `db:"name_en"       ddl:"TEXT"                                              gorm:"column:name_en;type:text"`
	StartYear    int            `db:"start_year"    ddl:"INTEGER NOT NULL"                                  gorm:"column:start_year;type:integer;not null"`
	EndYear      sql.NullInt64  `db:"end_year"      ddl:"INTEGER"                                           gorm:"column:end_year;type:integer"`
	Summary      sql.NullString `db:"summary"       ddl:"TEXT"                                              gorm:"column:summary;type:text"`

	// KeyFacts is a JSON array of strings.
	KeyFacts string `db:"key_facts" ddl:"TEXT NOT NULL" gorm:"column:key_facts;type:text;not null"`

	SortOrder int `db:"sort_order" ddl:"INTEGER NOT NULL" gorm:"column:sort_order;type:integer;not null"`
}

// EraEvent is a row of the era_events table.
type EraEvent struct {
	EraID string `db:"era_id" ddl:"VARCHAR(255) NOT NULL REFERENCES eras(id)" gorm:"column:era_id;type:varchar(255);primaryKey"`

	// Position keeps the order of events inside an era, starting at 1.
	Position int    `db:"position" ddl:"INTEGER NOT NULL" gorm:"column:position;type:integer;primaryKey;autoIncrement:false"`
	Year     int    `db:"year"     ddl:"INTEGER NOT NULL" gorm:"column:year;type:integer;not null"`
	Label    string `db:"label"    ddl:"TEXT NOT NULL"    gorm:"column:label;type:text;not null"`
}

// Variant is a row of the variants table. Variant IDs are not guaranteed
// to be unique, so the table has no primary key.
type Variant struct {
	ID               string          `db:"id"                 ddl:"VARCHAR(255) NOT NULL"                     gorm:"column:id;type:varchar(255);not null"`
	EraID            string          `db:"era_id"             ddl:"VARCHAR(255) NOT NULL REFERENCES eras(id)" gorm:"column:era_id;type:varchar(255);not null"`
	Slug             string          `db:"slug"               ddl:"VARCHAR(255) NOT NULL"                     gorm:"column:slug;type:varchar(255);not null"`
	Name             string          `db:"name"               ddl:"TEXT NOT NULL"                             gorm:"column:name;type:text;not null"`
	NameEn           string          `db:"name_en"            ddl:"TEXT NOT NULL"                             gorm:"column:name_en;type:text;not null"`
	MovementType     sql.NullString  `db:"movement_type"      ddl:"TEXT"                                      gorm:"column:movement_type;type:text"`
	Caliber          sql.NullString  `db:"caliber"            ddl:"TEXT"                                      gorm:"column:caliber;type:text"`
	CaseSizeMm       sql.NullFloat64 `db:"case_size_mm"       ddl:"DOUBLE PRECISION"                          gorm:"column:case_size_mm;type:double precision"`
	CaseMaterial     sql.NullString  `db:"case_material"      ddl:"TEXT"                                      gorm:"column:case_material;type:text"`
	WaterResistanceM sql.NullInt64   `db:"water_resistance_m" ddl:"INTEGER"                                   gorm:"column:water_resistance_m;type:integer"`
	Crystal          sql.NullString  `db:"crystal"            ddl:"TEXT"                                      gorm:"column:crystal;type:text"`
	Bezel            sql.NullString  `db:"bezel"              ddl:"TEXT"                                      gorm:"column:bezel;type:text"`

	// BraceletStrap is a JSON array of strings.
	BraceletStrap string         `db:"bracelet_strap" ddl:"TEXT NOT NULL" gorm:"column:bracelet_strap;type:text;not null"`
	DialColor     sql.NullString `db:"dial_color"     ddl:"TEXT"          gorm:"column:dial_color;type:text"`

	// KeyFacts is a JSON array of strings.
	KeyFacts    string         `db:"key_facts"    ddl:"TEXT NOT NULL"    gorm:"column:key_facts;type:text;not null"`
	WikidataQID sql.NullString `db:"wikidata_qid" ddl:"VARCHAR(50)"      gorm:"column:wikidata_qid;type:varchar(50)"`
	ImageSource sql.NullString `db:"image_source" ddl:"TEXT"             gorm:"column:image_source;type:text"`
	SortOrder   int            `db:"sort_order"   ddl:"INTEGER NOT NULL" gorm:"column:sort_order;type:integer;not null"`
}
