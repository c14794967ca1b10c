package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/camden-git/awardsapi/awards"
	"github.com/camden-git/awardsapi/database"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

type AwardHandler struct {
	DB *sql.DB
}

// respondFiltered runs the whole pipeline for one request: compile the
// filters into a scan, normalize the rows, apply the person post-filter
// when present, and write the response. Every route goes through here so
// boolean and names normalization cannot diverge between endpoints.
func (ah *AwardHandler) respondFiltered(w http.ResponseWriter, f awards.Filters, emptyMsg string) {
	rows, err := database.QueryAwards(ah.DB, f)
	if err != nil {
		log.Printf("Error querying awards: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to query awards"})
		return
	}
	if len(rows) == 0 {
		http.Error(w, emptyMsg, http.StatusNotFound)
		return
	}

	list, failed := awards.NormalizeAll(rows)
	if failed > 0 {
		log.Printf("Warning: %d of %d awards had unparseable names", failed, len(rows))
	}

	if f.Person != "" {
		list = awards.FilterByPerson(list, f.Person)
		if len(list) == 0 {
			http.Error(w, "No awards found for this person", http.StatusNotFound)
			return
		}
	}

	writeJSON(w, http.StatusOK, list)
}

// ListAwards handles GET /awards with any combination of query filters.
func (ah *AwardHandler) ListAwards(w http.ResponseWriter, r *http.Request) {
	f := awards.ParseFilters(r.URL.Query())
	ah.respondFiltered(w, f, "No awards found for these parameters")
}

// GetByCategory handles GET /awards/category/{category} as a
// case-insensitive substring match.
func (ah *AwardHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	f := awards.Filters{Category: chi.URLParam(r, "category")}
	ah.respondFiltered(w, f, "No awards found for this category")
}

// GetByIMDB handles GET /awards/imdb/{imdb} as a case-insensitive
// substring match.
func (ah *AwardHandler) GetByIMDB(w http.ResponseWriter, r *http.Request) {
	f := awards.Filters{IMDBLike: chi.URLParam(r, "imdb")}
	ah.respondFiltered(w, f, "No awards found for this imdb")
}

// GetByTMDB handles GET /awards/tmdb/{tmdb} as an exact match.
func (ah *AwardHandler) GetByTMDB(w http.ResponseWriter, r *http.Request) {
	f := awards.Filters{TMDB: chi.URLParam(r, "tmdb")}
	ah.respondFiltered(w, f, "No awards found for this tmdb")
}

// GetByTitle handles GET /awards/title/{title} as a case-insensitive
// substring match.
func (ah *AwardHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	f := awards.Filters{TitleLike: chi.URLParam(r, "title")}
	ah.respondFiltered(w, f, "No awards found for this title")
}

// GetByPerson handles GET /awards/person/{person}. The match runs over
// the repaired and parsed names, so it is a full scan plus post-filter.
func (ah *AwardHandler) GetByPerson(w http.ResponseWriter, r *http.Request) {
	f := awards.Filters{Person: chi.URLParam(r, "person")}
	ah.respondFiltered(w, f, "No awards found for this person")
}
