package models

import "time"

// Checkin is a single Foursquare check-in as returned by the
// users/self/checkins endpoint. Every field is optional on the wire; zero
// values are safe defaults throughout the analysis pipeline.
type Checkin struct {
	ID string `json:"id"`

	// CreatedAt is seconds since epoch, UTC.
	CreatedAt int64 `json:"createdAt"`

	// TimeZoneOffset is the check-in's own offset from UTC in minutes.
	// Each record carries its own offset; there is no global timezone.
	TimeZoneOffset int `json:"timeZoneOffset"`

	Venue  Venue      `json:"venue"`
	With   []Friend   `json:"with"`
	Shout  string     `json:"shout"`
	Photos PhotoGroup `json:"photos"`
}

// LocalTime returns the check-in's wall-clock time at the venue.
func (c Checkin) LocalTime() time.Time {
	return time.Unix(c.CreatedAt, 0).UTC().Add(time.Duration(c.TimeZoneOffset) * time.Minute)
}

// Venue identifies the place a check-in happened at.
type Venue struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Categories []Category    `json:"categories"`
	Location   VenueLocation `json:"location"`
}

// Category is one entry of a venue's category list.
type Category struct {
	Name string `json:"name"`
}

// VenueLocation holds a venue's address fields. Lat/Lng are pointers so
// that absent coordinates are distinguishable from 0.
type VenueLocation struct {
	City    string   `json:"city"`
	State   string   `json:"state"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// Friend is a companion on a check-in.
type Friend struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PhotoGroup is the photos attachment envelope.
type PhotoGroup struct {
	Count int     `json:"count"`
	Items []Photo `json:"items"`
}

// Photo is a single attached photo. Only its presence matters for stats.
type Photo struct {
	ID string `json:"id"`
}

// VenueInfo is the frozen first-seen record for a venue id. Later check-ins
// referencing the same id never update these attributes.
type VenueInfo struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Country  string   `json:"country"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}
