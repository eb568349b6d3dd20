package wikidata_test

import (
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/pkg/wikidata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func timeClaim(snakType, t string) wikidata.Claim {
	snak := wikidata.Snak{SnakType: snakType}
	if snakType == wikidata.SnakValue {
		snak.DataValue = &wikidata.DataValue{
			Value: map[string]any{"time": t, "precision": float64(9)},
			Type:  "time",
		}
	}
	return wikidata.Claim{MainSnak: snak}
}

func itemClaim(id string) wikidata.Claim {
	return wikidata.Claim{MainSnak: wikidata.Snak{
		SnakType: wikidata.SnakValue,
		DataValue: &wikidata.DataValue{
			Value: map[string]any{"entity-type": "item", "id": id},
			Type:  "wikibase-entityid",
		},
	}}
}

func entity(label, desc string) *wikidata.Entity {
	return &wikidata.Entity{
		ID: "Q1",
		Labels: map[string]wikidata.LangValue{
			"en": {Language: "en", Value: label},
		},
		Descriptions: map[string]wikidata.LangValue{
			"en": {Language: "en", Value: desc},
		},
		Claims: map[string][]wikidata.Claim{},
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		msg    string
		claims []wikidata.Claim
		year   *int
	}{
		{
			msg:    "positive year",
			claims: []wikidata.Claim{timeClaim("value", "+1957-01-01T00:00:00Z")},
			year:   ptr(1957),
		},
		{
			msg:    "negative year",
			claims: []wikidata.Claim{timeClaim("value", "-0044-01-01T00:00:00Z")},
			year:   ptr(-44),
		},
		{
			msg:    "no plus sign",
			claims: []wikidata.Claim{timeClaim("value", "1926-00-00T00:00:00Z")},
			year:   ptr(1926),
		},
		{
			msg:    "novalue snak",
			claims: []wikidata.Claim{timeClaim("novalue", "")},
		},
		{
			msg:    "somevalue snak",
			claims: []wikidata.Claim{timeClaim("somevalue", "")},
		},
		{
			msg:    "only the first claim counts",
			claims: []wikidata.Claim{
				timeClaim("novalue", ""),
				timeClaim("value", "+1957-01-01T00:00:00Z"),
			},
		},
		{
			msg:    "malformed time",
			claims: []wikidata.Claim{timeClaim("value", "in the fifties")},
		},
		{
			msg: "string value instead of time",
			claims: []wikidata.Claim{{MainSnak: wikidata.Snak{
				SnakType:  "value",
				DataValue: &wikidata.DataValue{Value: "1957"},
			}}},
		},
		{
			msg: "no claims",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := wikidata.ParseYear(v.claims)
			assert.Equal(t, v.year, res)
		})
	}
}

func TestLabelDescription(t *testing.T) {
	assert := assert.New(t)
	e := entity("  Omega Speedmaster ", "line of chronograph watches")
	assert.Equal("Omega Speedmaster", wikidata.Label(e))
	assert.Equal("line of chronograph watches", wikidata.Description(e))

	e = &wikidata.Entity{ID: "Q2"}
	assert.Equal("", wikidata.Label(e))
	assert.Equal("", wikidata.Description(e))
	assert.Equal("", wikidata.Label(nil))
}

func TestCountry(t *testing.T) {
	tests := []struct {
		msg    string
		claims map[string][]wikidata.Claim
		res    *string
	}{
		{
			msg: "country first",
			claims: map[string][]wikidata.Claim{
				wikidata.PropCountry:         {itemClaim("Q39")},
				wikidata.PropCountryOfOrigin: {itemClaim("Q17")},
			},
			res: ptr("Q39"),
		},
		{
			msg: "country of origin as fallback",
			claims: map[string][]wikidata.Claim{
				wikidata.PropCountryOfOrigin: {itemClaim("Q17")},
			},
			res: ptr("Q17"),
		},
		{
			msg: "unusable country claim",
			claims: map[string][]wikidata.Claim{
				wikidata.PropCountry:         {timeClaim("novalue", "")},
				wikidata.PropCountryOfOrigin: {itemClaim("Q142")},
			},
			res: ptr("Q142"),
		},
		{
			msg:    "no country",
			claims: map[string][]wikidata.Claim{},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			e := entity("Rolex", "Swiss watch manufacturer")
			e.Claims = v.claims
			assert.Equal(t, v.res, wikidata.Country(e))
		})
	}
}

func TestSubclassType(t *testing.T) {
	tests := []struct {
		msg    string
		claims []wikidata.Claim
		res    string
	}{
		{
			msg:    "diving",
			claims: []wikidata.Claim{itemClaim("Q678894")},
			res:    "diving",
		},
		{
			msg:    "chronograph after unknown",
			claims: []wikidata.Claim{itemClaim("Q1"), itemClaim("Q268592")},
			res:    "chronograph",
		},
		{
			msg: "first match wins",
			claims: []wikidata.Claim{
				itemClaim("Q268592"), itemClaim("Q678894"),
			},
			res: "chronograph",
		},
		{
			msg: "fourth claim is ignored",
			claims: []wikidata.Claim{
				itemClaim("Q1"), itemClaim("Q2"), itemClaim("Q3"),
				itemClaim("Q678894"),
			},
			res: "",
		},
		{
			msg: "no claims",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			e := entity("Submariner", "watch")
			e.Claims[wikidata.PropSubclassOf] = v.claims
			assert.Equal(t, v.res, wikidata.SubclassType(e))
		})
	}
}

func TestCommonsCategory(t *testing.T) {
	e := entity("Omega Seamaster", "watch line")
	assert.Nil(t, wikidata.CommonsCategory(e))

	e.Claims[wikidata.PropCommonsCategory] = []wikidata.Claim{{
		MainSnak: wikidata.Snak{
			SnakType:  "value",
			DataValue: &wikidata.DataValue{Value: "Omega Seamaster", Type: "string"},
		},
	}}
	res := wikidata.CommonsCategory(e)
	require.NotNil(t, res)
	assert.Equal(t, "Omega Seamaster", *res)
}

func TestIsLikelyWrongEntity(t *testing.T) {
	tests := []struct {
		msg   string
		label string
		desc  string
		res   bool
	}{
		{"family name is not a marker", "Speedmaster", "family name", false},
		{"surname in description", "Daytona", "Surname", true},
		{"given name", "Navitimer", "male given name", true},
		{"aircraft pilot", "Lindbergh", "American aircraft pilot", true},
		{"bailey", "Bailey", "", true},
		{"aviators", "Pilot", "list of aviators", true},
		{"pilot aeronautics", "Pilot", "Pilot (aeronautics)", true},
		{"watch", "Rolex Submariner", "line of diving watches", false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			e := entity(v.label, v.desc)
			assert.Equal(t, v.res, wikidata.IsLikelyWrongEntity(e))
		})
	}

	t.Run("nil entity", func(t *testing.T) {
		assert.True(t, wikidata.IsLikelyWrongEntity(nil))
	})
}

func TestDecodeEntity(t *testing.T) {
	data := []byte(`{
  "entities": {
    "Q62732": {
      "type": "item",
      "id": "Q62732",
      "labels": {"en": {"language": "en", "value": "Rolex"}},
      "descriptions": {"en": {"language": "en", "value": "Swiss watch brand"}},
      "claims": {
        "P571": [{"mainsnak": {"snaktype": "value", "property": "P571",
          "datavalue": {"value": {"time": "+1905-00-00T00:00:00Z"},
          "type": "time"}}}],
        "P17": [{"mainsnak": {"snaktype": "value", "property": "P17",
          "datavalue": {"value": {"entity-type": "item", "numeric-id": 39,
          "id": "Q39"}, "type": "wikibase-entityid"}}}]
      }
    },
    "Q0": {"id": "Q0", "missing": ""}
  }
}`)
	var resp wikidata.EntitiesResponse
	enc := gnfmt.GNjson{}
	err := enc.Decode(data, &resp)
	require.Nil(t, err)

	e := resp.Entities["Q62732"]
	require.NotNil(t, e)
	assert.False(t, e.IsMissing())
	assert.Equal(t, "Rolex", wikidata.Label(e))
	assert.Equal(t, ptr(1905), wikidata.ParseYear(e.Claims[wikidata.PropInception]))
	assert.Equal(t, ptr("Q39"), wikidata.Country(e))

	assert.True(t, resp.Entities["Q0"].IsMissing())
	assert.True(t, resp.Entities["Q404"].IsMissing())
}
