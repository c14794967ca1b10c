package awards

import "database/sql"

// RawAward mirrors one stored row of the awards table before normalization.
// The boolean-like columns and the names column keep their stored text form.
type RawAward struct {
	ID               int64
	Year             int
	Ceremony         int
	CeremonyDate     string
	FilmYears        string
	Category         string
	OriginalCategory string
	IMDB             string
	TMDB             string
	ReleaseDate      string
	Img              string
	IsActing         string
	IsWinner         string
	Title            string
	Names            string
	Notes            sql.NullString
}

// Award is the output shape of one nomination or win. Field names follow
// the stored column names so responses stay compatible with the dataset.
type Award struct {
	ID               int64     `json:"id"`
	Year             int       `json:"year"`
	Ceremony         int       `json:"ceremony"`
	CeremonyDate     string    `json:"ceremony_date"`
	FilmYears        string    `json:"film_years"`
	Category         string    `json:"category"`
	OriginalCategory string    `json:"original_category"`
	IMDB             string    `json:"imdb"`
	TMDB             string    `json:"tmdb"`
	ReleaseDate      string    `json:"release_date"`
	Img              string    `json:"img"`
	IsActing         bool      `json:"isActing"`
	IsWinner         bool      `json:"isWinner"`
	Title            string    `json:"title"`
	Names            []Nominee `json:"names"`
	Notes            *string   `json:"notes"`
}

// Nominee is one credited person or entity within an award. Name is a
// pointer because the source export sometimes omits it entirely; the
// repair step turns those omissions into explicit nulls.
type Nominee struct {
	Name *string `json:"name"`
	Role string  `json:"role,omitempty"`
}
