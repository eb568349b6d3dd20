package wikidata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var yearRe = regexp.MustCompile(`^\+?(-?\d{4})`)

// subclassTypes maps "subclass of" targets to a collection type.
var subclassTypes = map[string]string{
	"Q678894": "diving",
	"Q268592": "chronograph",
}

// wrongEntityMarkers are substrings of label+description that show the
// resolver landed on a person or a name instead of a watch.
var wrongEntityMarkers = []string{
	"surname",
	"bailey",
	"aircraft pilot",
	"aviators",
	"pilot (aeronautics)",
	"given name",
}

// ParseYear returns the signed year of the first claim of a time-valued
// property. Only the first claim is considered. Claims with "novalue" or
// "somevalue" snaks, or without a time string, give nil.
func ParseYear(claims []Claim) *int {
	if len(claims) == 0 {
		return nil
	}
	snak := claims[0].MainSnak
	if snak.SnakType != SnakValue || snak.DataValue == nil {
		return nil
	}
	obj, ok := snak.DataValue.Value.(map[string]any)
	if !ok {
		return nil
	}
	t, ok := obj["time"].(string)
	if !ok {
		return nil
	}
	m := yearRe.FindStringSubmatch(t)
	if m == nil {
		return nil
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &year
}

// Label returns the English label of an entity or an empty string.
func Label(e *Entity) string {
	if e == nil {
		return ""
	}
	return Normalize(e.Labels[defaultLanguage].Value)
}

// Description returns the English description of an entity or an empty
// string.
func Description(e *Entity) string {
	if e == nil {
		return ""
	}
	return Normalize(e.Descriptions[defaultLanguage].Value)
}

// ItemID returns the referenced entity ID of an item-valued claim.
func ItemID(c Claim) (string, bool) {
	snak := c.MainSnak
	if snak.SnakType != SnakValue || snak.DataValue == nil {
		return "", false
	}
	obj, ok := snak.DataValue.Value.(map[string]any)
	if !ok {
		return "", false
	}
	if id, ok := obj["id"].(string); ok && id != "" {
		return id, true
	}
	// older dumps carry only the numeric part
	switch n := obj["numeric-id"].(type) {
	case float64:
		return fmt.Sprintf("Q%d", int64(n)), true
	case int:
		return fmt.Sprintf("Q%d", n), true
	}
	return "", false
}

// Country returns the QID of the country of an entity. "country" is tried
// before "country of origin", and only the first claim of each counts.
func Country(e *Entity) *string {
	if e == nil {
		return nil
	}
	for _, prop := range []string{PropCountry, PropCountryOfOrigin} {
		claims := e.Claims[prop]
		if len(claims) == 0 {
			continue
		}
		if id, ok := ItemID(claims[0]); ok {
			return &id
		}
	}
	return nil
}

// SubclassType classifies an entity by its first three "subclass of"
// claims. It returns an empty string when none of them is known.
func SubclassType(e *Entity) string {
	if e == nil {
		return ""
	}
	claims := e.Claims[PropSubclassOf]
	if len(claims) > subclassMaxCheck {
		claims = claims[:subclassMaxCheck]
	}
	for _, c := range claims {
		id, ok := ItemID(c)
		if !ok {
			continue
		}
		if tp, ok := subclassTypes[id]; ok {
			return tp
		}
	}
	return ""
}

// CommonsCategory returns the Wikimedia Commons category of an entity.
func CommonsCategory(e *Entity) *string {
	if e == nil {
		return nil
	}
	claims := e.Claims[PropCommonsCategory]
	if len(claims) == 0 {
		return nil
	}
	snak := claims[0].MainSnak
	if snak.SnakType != SnakValue || snak.DataValue == nil {
		return nil
	}
	s, ok := snak.DataValue.Value.(string)
	if !ok {
		return nil
	}
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return &s
}

// IsLikelyWrongEntity reports whether an entity looks like a person or a
// personal name rather than a watch. It is a plain substring test of the
// lowercased label and description. A nil entity is always wrong.
func IsLikelyWrongEntity(e *Entity) bool {
	if e == nil {
		return true
	}
	text := strings.ToLower(Label(e) + " " + Description(e))
	for _, m := range wrongEntityMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
