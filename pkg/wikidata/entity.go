// Package wikidata describes the subset of Wikidata entity JSON used by
// watchseed and provides pure functions that extract typed values from
// entity claims.
package wikidata

// Property identifiers read by watchseed.
const (
	// PropCountry is "country".
	PropCountry = "P17"
	// PropCountryOfOrigin is "country of origin".
	PropCountryOfOrigin = "P495"
	// PropSubclassOf is "subclass of".
	PropSubclassOf = "P279"
	// PropInception is "inception".
	PropInception = "P571"
	// PropDiscontinued is "discontinued date".
	PropDiscontinued = "P2669"
	// PropDissolved is "dissolved, abolished or demolished date".
	PropDissolved = "P576"
	// PropCommonsCategory is "Commons category".
	PropCommonsCategory = "P373"
)

// Snak types.
const (
	SnakValue        = "value"
	SnakNoValue      = "novalue"
	SnakSomeValue    = "somevalue"
	defaultLanguage  = "en"
	subclassMaxCheck = 3
)

// Entity is a Wikidata item as returned by wbgetentities with
// props=claims|labels|descriptions.
type Entity struct {
	ID string `json:"id"`

	// Missing is present (usually as an empty string) when the requested
	// entity does not exist.
	Missing *string `json:"missing,omitempty"`

	Labels       map[string]LangValue `json:"labels,omitempty"`
	Descriptions map[string]LangValue `json:"descriptions,omitempty"`

	// Claims are keyed by property ID.
	Claims map[string][]Claim `json:"claims,omitempty"`
}

// IsMissing is true for nil entities and entities flagged as missing.
func (e *Entity) IsMissing() bool {
	return e == nil || e.Missing != nil
}

// LangValue is a language-tagged string.
type LangValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Claim is a property-value assertion attached to an entity.
type Claim struct {
	MainSnak Snak   `json:"mainsnak"`
	Rank     string `json:"rank,omitempty"`
}

// Snak is the value-bearing part of a claim.
type Snak struct {
	// SnakType is one of "value", "novalue", "somevalue".
	SnakType  string     `json:"snaktype"`
	Property  string     `json:"property,omitempty"`
	DataValue *DataValue `json:"datavalue,omitempty"`
}

// DataValue keeps the value as decoded from JSON: a string for string-like
// datatypes, a map for time, item and other structured datatypes.
type DataValue struct {
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

// EntitiesResponse is the envelope of the wbgetentities action.
type EntitiesResponse struct {
	Entities map[string]*Entity `json:"entities"`
}

// SearchResponse is the envelope of the wbsearchentities action.
type SearchResponse struct {
	Search []SearchHit `json:"search"`
}

// SearchHit is one candidate of a free-text search.
type SearchHit struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}
