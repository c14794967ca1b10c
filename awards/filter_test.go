package awards

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFiltersRecognizedKeys(t *testing.T) {
	values := url.Values{
		"year":     {"2024"},
		"imdb":     {"tt1517268"},
		"tmdb":     {"872585"},
		"title":    {"Oppenheimer"},
		"category": {"Actor"},
		"isWinner": {"true"},
		"isActing": {"1"},
		"person":   {"Murphy"},
	}
	f := ParseFilters(values)
	assert.Equal(t, "2024", f.Year)
	assert.Equal(t, "tt1517268", f.IMDB)
	assert.Equal(t, "872585", f.TMDB)
	assert.Equal(t, "Oppenheimer", f.Title)
	assert.Equal(t, "Actor", f.Category)
	assert.Equal(t, "true", f.Winner)
	assert.Equal(t, "1", f.Acting)
	assert.Equal(t, "Murphy", f.Person)
}

func TestParseFiltersIgnoresUnrecognizedKeys(t *testing.T) {
	values := url.Values{
		"director": {"Nolan"},
		"limit":    {"10"},
		"year":     {"2024"},
	}
	f := ParseFilters(values)
	assert.Equal(t, Filters{Year: "2024"}, f)
}

func TestCanonicalBool(t *testing.T) {
	for _, truthy := range []string{"true", "1", "TRUE"} {
		assert.Equal(t, TruthyMarker, CanonicalBool(truthy), "spelling %q", truthy)
	}
	for _, other := range []string{"false", "0", "FALSE", "True", "yes", "", " true"} {
		assert.Equal(t, FalsyMarker, CanonicalBool(other), "spelling %q", other)
	}
}
