package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	testCases := []struct {
		input  string
		want   Tag
		filter string
	}{
		{"shop=bakery", Tag{Key: "shop", Op: OpEqual, Value: "bakery"}, `["shop"="bakery"]`},
		{" amenity = cafe ", Tag{Key: "amenity", Op: OpEqual, Value: "cafe"}, `["amenity"="cafe"]`},
		{"amenity!=parking", Tag{Key: "amenity", Op: OpNotEqual, Value: "parking"}, `["amenity"!="parking"]`},
		{"name~^Boulangerie", Tag{Key: "name", Op: OpMatch, Value: "^Boulangerie"}, `["name"~"^Boulangerie"]`},
		{"name!~Starbucks", Tag{Key: "name", Op: OpNotMatch, Value: "Starbucks"}, `["name"!~"Starbucks"]`},
		{"wheelchair", Tag{Key: "wheelchair", Op: OpExists}, `["wheelchair"]`},
		{"!opening_hours", Tag{Key: "opening_hours", Op: OpNotExists}, `[!"opening_hours"]`},
		{`"name"="Café de l'Ouest"`, Tag{Key: "name", Op: OpEqual, Value: "Café de l'Ouest"}, `["name"="Café de l'Ouest"]`},
		{`name=say "hi"`, Tag{Key: "name", Op: OpEqual, Value: `say "hi"`}, `["name"="say \"hi\""]`},
		{`name=back\slash`, Tag{Key: "name", Op: OpEqual, Value: `back\slash`}, `["name"="back\\slash"]`},
		{"cuisine=pizza;burger", Tag{Key: "cuisine", Op: OpEqual, Value: "pizza;burger"}, `["cuisine"="pizza;burger"]`},
		{`name~"^(Cafe|Bar)$"`, Tag{Key: "name", Op: OpMatch, Value: "^(Cafe|Bar)$"}, `["name"~"^(Cafe|Bar)$"]`},
		{"name=Café (Paris)", Tag{Key: "name", Op: OpEqual, Value: "Café (Paris)"}, `["name"="Café (Paris)"]`},
		{`shop=bakery"];out;(node["amenity`, Tag{Key: "shop", Op: OpEqual, Value: `bakery"];out;(node["amenity`}, `["shop"="bakery\"];out;(node[\"amenity"]`},
		{"name~boulangerie,i", Tag{Key: "name", Op: OpMatch, Value: "boulangerie", IgnoreCase: true}, `["name"~"boulangerie",i]`},
		{`name!~"^(Starbucks|Costa)",i`, Tag{Key: "name", Op: OpNotMatch, Value: "^(Starbucks|Costa)", IgnoreCase: true}, `["name"!~"^(Starbucks|Costa)",i]`},
		{`name~"a,i"`, Tag{Key: "name", Op: OpMatch, Value: "a,i"}, `["name"~"a,i"]`},
		{"note=x,i", Tag{Key: "note", Op: OpEqual, Value: "x,i"}, `["note"="x,i"]`},
	}
	for _, tC := range testCases {
		t.Run(tC.input, func(t *testing.T) {
			got, err := ParseTag(tC.input)
			require.NoError(t, err)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, tC.filter, got.Filter())
		})
	}
}

func TestParseTagInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"=bakery",
		"shop=",
		"shop=bakery\nout;",
		"shop=bakery\r",
		"!amenity=cafe",
		"!amenity!=cafe",
		"!name~^Cafe",
		"name~,i",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTag(input)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestTagString(t *testing.T) {
	for _, s := range []string{"shop=bakery", "a!=b", "a~b", "a!~b", "a", "!a", "a~b,i"} {
		tag, err := ParseTag(s)
		require.NoError(t, err)
		assert.Equal(t, s, tag.String())
	}
}
