package schema

// UserPlatformPreferenceTable represents the 'users.platformpreference' table
type UserPlatformPreferenceTable struct {
	Table                string
	UserID               string
	PreferredPlatforms   string
	LastSelectedPlatform string
	UpdatedAt            string
}

// UserPlatformPreference is the schema definition for users.platformpreference
var UserPlatformPreference = UserPlatformPreferenceTable{
	Table:                "users.platformpreference",
	UserID:               "userid",
	PreferredPlatforms:   "preferredplatforms",
	LastSelectedPlatform: "lastselectedplatform",
	UpdatedAt:            "updatedat",
}

// Columns returns all standard column names
func (t UserPlatformPreferenceTable) Columns() []string {
	return []string{t.UserID, t.PreferredPlatforms, t.LastSelectedPlatform, t.UpdatedAt}
}
