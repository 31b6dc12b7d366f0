package schema

// LibraryPlatformProgressTable represents the 'library.platformprogress' table
type LibraryPlatformProgressTable struct {
	Table          string
	ID             string
	UserID         string
	SeriesID       string
	Platform       string
	CurrentChapter string
	TotalChapters  string
	ScrollPosition string
	ResumeURL      string
	UpdatedAt      string
}

// LibraryPlatformProgress is the schema definition for library.platformprogress
var LibraryPlatformProgress = LibraryPlatformProgressTable{
	Table:          "library.platformprogress",
	ID:             "id",
	UserID:         "userid",
	SeriesID:       "seriesid",
	Platform:       "platform",
	CurrentChapter: "currentchapter",
	TotalChapters:  "totalchapters",
	ScrollPosition: "scrollposition",
	ResumeURL:      "resumeurl",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t LibraryPlatformProgressTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SeriesID, t.Platform, t.CurrentChapter,
		t.TotalChapters, t.ScrollPosition, t.ResumeURL, t.UpdatedAt,
	}
}
