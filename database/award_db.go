package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/awardsapi/awards"
)

var awardColumns = []string{
	"id", "year", "ceremony", "ceremony_date", "film_years",
	"category", "original_category", "imdb", "tmdb", "release_date",
	"img", "isActing", "isWinner", "title", "names", "notes",
}

// buildAwardsQuery compiles the active filters into a parameterized
// SELECT. Every user-supplied value travels as a bound argument; nothing
// is ever interpolated into the SQL text. A non-numeric year simply
// matches no rows, it is not an error.
func buildAwardsQuery(f awards.Filters) (string, []interface{}, error) {
	qb := psql.Select(awardColumns...).From("awards")

	if f.Year != "" {
		qb = qb.Where(sq.Eq{"year": f.Year})
	}
	if f.IMDB != "" {
		qb = qb.Where(sq.Eq{"imdb": f.IMDB})
	}
	if f.TMDB != "" {
		qb = qb.Where(sq.Eq{"tmdb": f.TMDB})
	}
	if f.Title != "" {
		qb = qb.Where(sq.Eq{"title": f.Title})
	}
	if f.Winner != "" {
		qb = qb.Where(sq.Eq{"isWinner": awards.CanonicalBool(f.Winner)})
	}
	if f.Acting != "" {
		qb = qb.Where(sq.Eq{"isActing": awards.CanonicalBool(f.Acting)})
	}
	if f.Category != "" {
		qb = qb.Where(sq.Like{"LOWER(category)": substringPattern(f.Category)})
	}
	if f.IMDBLike != "" {
		qb = qb.Where(sq.Like{"LOWER(imdb)": substringPattern(f.IMDBLike)})
	}
	if f.TitleLike != "" {
		qb = qb.Where(sq.Like{"LOWER(title)": substringPattern(f.TitleLike)})
	}

	return qb.OrderBy("id ASC").ToSql()
}

func substringPattern(v string) string {
	return "%" + strings.ToLower(v) + "%"
}

// QueryAwards runs a filtered scan over the awards table and returns the
// raw rows. Normalization of the boolean-like and names columns is the
// caller's concern; the person filter is applied after that, not here.
func QueryAwards(db *sql.DB, f awards.Filters) ([]awards.RawAward, error) {
	sqlStr, args, err := buildAwardsQuery(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for QueryAwards: %w", err)
	}
	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute QueryAwards: %w", err)
	}
	defer rows.Close()

	results := []awards.RawAward{}
	for rows.Next() {
		var a awards.RawAward
		err := rows.Scan(
			&a.ID, &a.Year, &a.Ceremony, &a.CeremonyDate, &a.FilmYears,
			&a.Category, &a.OriginalCategory, &a.IMDB, &a.TMDB, &a.ReleaseDate,
			&a.Img, &a.IsActing, &a.IsWinner, &a.Title, &a.Names, &a.Notes,
		)
		if err != nil {
			log.Printf("Error scanning award row: %v", err)
			continue
		}
		results = append(results, a)
	}
	if err = rows.Err(); err != nil {
		return results, fmt.Errorf("error iterating award rows: %w", err)
	}
	return results, nil
}
