package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/camden-git/awardsapi/awards"
	"github.com/camden-git/awardsapi/config"
	"github.com/camden-git/awardsapi/database"
	"github.com/camden-git/awardsapi/models"
)

// sourceAward mirrors one entry of the source export. Year arrives as
// text and the boolean-like fields as free-form spellings; names is kept
// raw because it may be double-encoded or malformed. The query layer
// repairs it at read time, the importer stores it exactly as exported.
type sourceAward struct {
	Year             string          `json:"year"`
	Ceremony         int             `json:"ceremony"`
	CeremonyDate     string          `json:"ceremony_date"`
	FilmYears        string          `json:"film_years"`
	Category         string          `json:"category"`
	OriginalCategory string          `json:"original_category"`
	IMDB             string          `json:"imdb"`
	TMDB             string          `json:"tmdb"`
	ReleaseDate      string          `json:"release_date"`
	Img              string          `json:"img"`
	IsActing         string          `json:"isActing"`
	IsWinner         string          `json:"isWinner"`
	Title            string          `json:"title"`
	Names            json.RawMessage `json:"names"`
	Notes            *string         `json:"notes"`
}

// canonicalMarker normalizes the export's boolean spellings to the single
// marker the query layer compares against.
func canonicalMarker(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "true") {
		return awards.TruthyMarker
	}
	return awards.FalsyMarker
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	log.Println("Updating awards database...")

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}

	log.Println("Dropping existing awards table...")
	if err := db.Migrator().DropTable(&models.Award{}); err != nil {
		log.Printf("Warning: failed to drop awards table: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate awards table: %v", err)
	}

	log.Printf("Reading %s...", cfg.SourceJSONPath)
	data, err := os.ReadFile(cfg.SourceJSONPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to read source JSON: %v", err)
	}

	var source []sourceAward
	if err := json.Unmarshal(data, &source); err != nil {
		log.Fatalf("FATAL: Failed to parse source JSON: %v", err)
	}
	log.Printf("Found %d awards to import", len(source))

	records := make([]models.Award, 0, len(source))
	for i, s := range source {
		year, err := strconv.Atoi(strings.TrimSpace(s.Year))
		if err != nil {
			log.Printf("Warning: entry %d has non-numeric year %q", i, s.Year)
		}
		records = append(records, models.Award{
			Year:             year,
			Ceremony:         s.Ceremony,
			CeremonyDate:     s.CeremonyDate,
			FilmYears:        s.FilmYears,
			Category:         s.Category,
			OriginalCategory: s.OriginalCategory,
			IMDB:             s.IMDB,
			TMDB:             s.TMDB,
			ReleaseDate:      s.ReleaseDate,
			Img:              s.Img,
			IsActing:         canonicalMarker(s.IsActing),
			IsWinner:         canonicalMarker(s.IsWinner),
			Title:            s.Title,
			Names:            string(s.Names),
			Notes:            s.Notes,
		})
	}

	log.Println("Inserting data into database...")
	if len(records) > 0 {
		if err := db.CreateInBatches(records, 500).Error; err != nil {
			log.Fatalf("FATAL: Bulk insert failed: %v", err)
		}
	}
	log.Printf("Inserted %d awards", len(records))

	var years []int
	if err := db.Raw("SELECT DISTINCT year FROM awards ORDER BY year DESC LIMIT 5").Scan(&years).Error; err != nil {
		log.Printf("Warning: failed to query latest years: %v", err)
	} else {
		log.Printf("Latest years in database: %v", years)
	}

	var winners int64
	if err := db.Model(&models.Award{}).Where("isWinner = ?", awards.TruthyMarker).Count(&winners).Error; err != nil {
		log.Printf("Warning: failed to count winners: %v", err)
	} else {
		log.Printf("Winner entries: %d", winners)
	}

	log.Println("Database update complete")
}
