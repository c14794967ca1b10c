package models

// Award is the GORM model behind the awards table, used by the importer.
// Column names mirror the original export so the raw query path scans the
// same schema. The boolean-like columns hold the canonical 'TRUE'/'FALSE'
// markers as text; names holds the structured-encoded value exactly as
// exported.
type Award struct {
	ID               int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Year             int     `gorm:"column:year" json:"year"`
	Ceremony         int     `gorm:"column:ceremony" json:"ceremony"`
	CeremonyDate     string  `gorm:"column:ceremony_date" json:"ceremony_date"`
	FilmYears        string  `gorm:"column:film_years" json:"film_years"`
	Category         string  `gorm:"column:category" json:"category"`
	OriginalCategory string  `gorm:"column:original_category" json:"original_category"`
	IMDB             string  `gorm:"column:imdb" json:"imdb"`
	TMDB             string  `gorm:"column:tmdb" json:"tmdb"`
	ReleaseDate      string  `gorm:"column:release_date" json:"release_date"`
	Img              string  `gorm:"column:img" json:"img"`
	IsActing         string  `gorm:"column:isActing" json:"isActing"`
	IsWinner         string  `gorm:"column:isWinner" json:"isWinner"`
	Title            string  `gorm:"column:title" json:"title"`
	Names            string  `gorm:"column:names" json:"names"`
	Notes            *string `gorm:"column:notes" json:"notes"`
}

func (Award) TableName() string {
	return "awards"
}
