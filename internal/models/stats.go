package models

// Stats is the full wrapped report for one year of check-ins. It is built
// fresh on every analysis run and never mutated after return.
type Stats struct {
	TotalCheckins int `json:"total_checkins"`

	// Venues
	UniqueVenues  int          `json:"unique_venues"`
	TopVenues     []VenueCount `json:"top_venues"`
	OneTimeVenues int          `json:"one_time_venues"`
	OneTimePct    float64      `json:"one_time_percentage"`

	// Categories and places
	TopCategories    []NameCount `json:"top_categories"`
	UniqueCategories int         `json:"unique_categories"`
	TopCities        []NameCount `json:"top_cities"`
	UniqueCities     int         `json:"unique_cities"`
	Countries        []NameCount `json:"countries"`

	// Time distributions (zero-filled for buckets with no activity)
	HourlyDistribution  map[string]int `json:"hourly_distribution"`
	DailyDistribution   map[string]int `json:"daily_distribution"`
	MonthlyDistribution map[string]int `json:"monthly_distribution"`

	PeakHour          int    `json:"peak_hour"`
	PeakHourFormatted string `json:"peak_hour_formatted"`
	BusiestDay        string `json:"busiest_day"`
	BusiestMonth      string `json:"busiest_month"`

	// Activity
	DaysActive       int     `json:"days_active"`
	TotalDays        int     `json:"total_days"`
	ActivityPct      float64 `json:"activity_percentage"`
	AvgPerActiveDay  float64 `json:"avg_checkins_per_active_day"`
	MaxCheckinsDay   string  `json:"max_checkins_day"`
	MaxCheckinsCount int     `json:"max_checkins_count"`
	LongestStreak    int     `json:"longest_streak"`
	LongestGapDays   int     `json:"longest_gap_days"`
	LongestGapStart  string  `json:"longest_gap_start,omitempty"`
	LongestGapEnd    string  `json:"longest_gap_end,omitempty"`

	// Social
	CheckinsWithFriends int         `json:"checkins_with_friends"`
	FriendPct           float64     `json:"friend_percentage"`
	TopFriends          []NameCount `json:"top_friends"`
	SoloCheckins        int         `json:"solo_checkins"`
	SoloPct             float64     `json:"solo_percentage"`
	CheckinsWithShouts  int         `json:"checkins_with_shouts"`
	ShoutPct            float64     `json:"shout_percentage"`
	TotalPhotos         int         `json:"total_photos"`

	// Time of day
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	TimePersonality string    `json:"time_personality"`
	WeekendPct      float64   `json:"weekend_percentage"`
	WeekdayPct      float64   `json:"weekday_percentage"`

	FirstCheckin *CheckinSummary `json:"first_checkin,omitempty"`
	LastCheckin  *CheckinSummary `json:"last_checkin,omitempty"`

	// Geospatial
	MapPoints        []MapPoint    `json:"map_points"`
	HomeCity         string        `json:"home_city,omitempty"`
	FurthestVenue    *RemoteVenue  `json:"furthest_venue,omitempty"`
	International    int           `json:"international_checkins"`
	InternationalPct float64       `json:"international_percentage"`

	MostUniqueVenuesDay   string `json:"most_unique_venues_day,omitempty"`
	MostUniqueVenuesCount int    `json:"most_unique_venues_count"`

	Personality *Personality `json:"personality"`
	YearSummary string       `json:"year_summary"`
}

// NameCount is one entry of a ranked list.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VenueCount is a ranked venue with its frozen first-seen attributes.
type VenueCount struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Category string `json:"category"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

// TimeOfDay holds the daypart bucket counts.
type TimeOfDay struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

// CheckinSummary describes the first or last check-in of the year.
type CheckinSummary struct {
	Venue string `json:"venue"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// MapPoint is a coordinate cluster (rounded to 4 decimals) with the venue
// annotations collected at that location.
type MapPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Venues string  `json:"v"`
}

// RemoteVenue is the venue furthest from the estimated home coordinates.
type RemoteVenue struct {
	Name          string `json:"name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	DistanceMiles int    `json:"distance_miles"`
}

// Personality is the selected archetype.
type Personality struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Profile is the subset of the Foursquare user profile shown on the report.
type Profile struct {
	Name             string `json:"name"`
	LifetimeCheckins int    `json:"lifetime_checkins"`
}
