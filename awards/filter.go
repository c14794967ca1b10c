package awards

import "net/url"

// TruthyMarker is the canonical text stored in the isActing and isWinner
// columns for logical true; every other stored value means false.
const (
	TruthyMarker = "TRUE"
	FalsyMarker  = "FALSE"
)

// Filters holds the optional criteria for an awards scan. Zero-value
// fields are inactive; active fields combine with logical AND. Person is
// never pushed into the storage query because it matches against the
// repaired and parsed names, which only exist after retrieval.
type Filters struct {
	Year      string // exact
	IMDB      string // exact
	TMDB      string // exact
	Title     string // exact
	IMDBLike  string // case-insensitive substring
	TitleLike string // case-insensitive substring
	Category  string // case-insensitive substring
	Winner    string // raw truthy spelling, canonicalized at compile time
	Acting    string // raw truthy spelling, canonicalized at compile time
	Person    string // in-memory post-filter over parsed nominee names
}

// ParseFilters picks the recognized filter keys out of a query string.
// Unrecognized keys are ignored. The title query parameter is an exact
// match; the substring title lookup lives on its own route.
func ParseFilters(values url.Values) Filters {
	return Filters{
		Year:     values.Get("year"),
		IMDB:     values.Get("imdb"),
		TMDB:     values.Get("tmdb"),
		Title:    values.Get("title"),
		Category: values.Get("category"),
		Winner:   values.Get("isWinner"),
		Acting:   values.Get("isActing"),
		Person:   values.Get("person"),
	}
}

// CanonicalBool maps the accepted truthy spellings to the canonical
// stored marker; anything else means false.
func CanonicalBool(v string) string {
	switch v {
	case "true", "1", "TRUE":
		return TruthyMarker
	}
	return FalsyMarker
}
