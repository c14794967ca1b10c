package awards

import (
	"log"
	"strings"
)

// Normalize converts a stored row into its output shape: boolean-like
// text columns become real booleans and the names column is repaired and
// parsed. A non-nil error reports a names value that failed to decode;
// the award is still returned with Names degraded to an empty sequence.
func Normalize(raw RawAward) (Award, error) {
	a := Award{
		ID:               raw.ID,
		Year:             raw.Year,
		Ceremony:         raw.Ceremony,
		CeremonyDate:     raw.CeremonyDate,
		FilmYears:        raw.FilmYears,
		Category:         raw.Category,
		OriginalCategory: raw.OriginalCategory,
		IMDB:             raw.IMDB,
		TMDB:             raw.TMDB,
		ReleaseDate:      raw.ReleaseDate,
		Img:              raw.Img,
		IsActing:         raw.IsActing == TruthyMarker,
		IsWinner:         raw.IsWinner == TruthyMarker,
		Title:            raw.Title,
		Names:            []Nominee{},
	}
	if raw.Notes.Valid {
		notes := raw.Notes.String
		a.Notes = &notes
	}

	names, err := DecodeNames(raw.Names)
	if err != nil {
		return a, err
	}
	a.Names = names
	return a, nil
}

// NormalizeAll normalizes every row, logging and counting rows whose
// names could not be decoded. Data-quality failures never abort the
// request; the affected rows simply carry an empty names sequence.
func NormalizeAll(rows []RawAward) ([]Award, int) {
	out := make([]Award, 0, len(rows))
	failed := 0
	for _, raw := range rows {
		a, err := Normalize(raw)
		if err != nil {
			log.Printf("award %d: %v", raw.ID, err)
			failed++
		}
		out = append(out, a)
	}
	return out, failed
}

// FilterByPerson keeps awards crediting at least one nominee whose name
// contains person, compared case-insensitively. Nominees with a null
// name never match.
func FilterByPerson(list []Award, person string) []Award {
	needle := strings.ToLower(person)
	matched := []Award{}
	for _, a := range list {
		for _, n := range a.Names {
			if n.Name != nil && strings.Contains(strings.ToLower(*n.Name), needle) {
				matched = append(matched, a)
				break
			}
		}
	}
	return matched
}
