package schema

// LibrarySeriesTable represents the 'library.series' table
type LibrarySeriesTable struct {
	Table           string
	ID              string
	UserID          string
	Title           string
	NormalizedTitle string
	Slug            string
	Platform        string
	ReadingStatus   string
	Genres          string
	TotalChapters   string
	CreatedAt       string
	UpdatedAt       string
}

// LibrarySeries is the schema definition for library.series
var LibrarySeries = LibrarySeriesTable{
	Table:           "library.series",
	ID:              "id",
	UserID:          "userid",
	Title:           "title",
	NormalizedTitle: "normalizedtitle",
	Slug:            "slug",
	Platform:        "platform",
	ReadingStatus:   "readingstatus",
	Genres:          "genres",
	TotalChapters:   "totalchapters",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t LibrarySeriesTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Title, t.NormalizedTitle, t.Slug, t.Platform,
		t.ReadingStatus, t.Genres, t.TotalChapters, t.CreatedAt, t.UpdatedAt,
	}
}
