package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

// homeCountry is the implicit home country used for city labels and the
// international share. Not configurable; the source data is US-centric.
const homeCountry = "United States"

const dateLayout = "2006-01-02"

// aggregate holds everything the analyzers need, produced by one sweep over
// the filtered check-ins. It is not mutated after Sweep returns.
type aggregate struct {
	total int

	// Venue registry, first-seen wins. venueIDs preserves registration order.
	venueIDs []string
	venues   map[string]models.VenueInfo

	venueCounts    *Tally
	categoryCounts *Tally
	cityCounts     *Tally
	countryCounts  *Tally
	friendCounts   *Tally
	perDay         *Tally

	hourly  [24]int
	daily   map[string]int // weekday name -> count
	monthly map[string]int // month abbreviation -> count

	// sortedDates is the distinct local calendar dates in ascending order.
	sortedDates []string

	venuesPerDay map[string]map[string]bool

	withFriends int
	withShouts  int
	totalPhotos int
	usCheckins  int

	mapKeys   []string
	mapPoints map[string]*mapCluster
}

type mapCluster struct {
	lat, lng float64
	names    []string
}

// Sweep runs the aggregation pass over an already-filtered batch.
func Sweep(checkins []models.Checkin) *aggregate {
	agg := &aggregate{
		venues:         make(map[string]models.VenueInfo),
		venueCounts:    NewTally(),
		categoryCounts: NewTally(),
		cityCounts:     NewTally(),
		countryCounts:  NewTally(),
		friendCounts:   NewTally(),
		perDay:         NewTally(),
		daily:          make(map[string]int),
		monthly:        make(map[string]int),
		venuesPerDay:   make(map[string]map[string]bool),
		mapPoints:      make(map[string]*mapCluster),
	}

	agg.total = len(checkins)

	for _, c := range checkins {
		info := agg.registerVenue(c.Venue)

		agg.venueCounts.Add(info.Name)
		agg.categoryCounts.Add(info.Category)
		agg.cityCounts.Add(cityLabel(info))
		agg.countryCounts.Add(info.Country)

		// Localize each record independently by its own UTC offset.
		local := c.LocalTime()
		agg.hourly[local.Hour()]++
		agg.daily[local.Weekday().String()]++
		agg.monthly[local.Format("Jan")]++

		date := local.Format(dateLayout)
		agg.perDay.Add(date)

		if agg.venuesPerDay[date] == nil {
			agg.venuesPerDay[date] = make(map[string]bool)
		}
		agg.venuesPerDay[date][info.Name] = true

		if len(c.With) > 0 {
			agg.withFriends++
			for _, f := range c.With {
				name := strings.TrimSpace(f.FirstName + " " + f.LastName)
				if name != "" {
					agg.friendCounts.Add(name)
				}
			}
		}

		if c.Shout != "" {
			agg.withShouts++
		}
		agg.totalPhotos += len(c.Photos.Items)

		// International is judged on the raw record's own country field,
		// not the frozen registry entry.
		if c.Venue.Location.Country == homeCountry {
			agg.usCheckins++
		}

		if info.Lat != nil && info.Lng != nil {
			agg.addMapPoint(*info.Lat, *info.Lng, info.Name)
		}
	}

	agg.sortedDates = make([]string, 0, agg.perDay.Len())
	agg.sortedDates = append(agg.sortedDates, agg.perDay.Keys()...)
	sort.Strings(agg.sortedDates)

	return agg
}

// registerVenue resolves the frozen info for a venue, storing it on first
// sight. Repeat sightings of the same id never update stored attributes.
func (a *aggregate) registerVenue(v models.Venue) models.VenueInfo {
	id := v.ID
	if id == "" {
		id = "unknown"
	}

	if info, ok := a.venues[id]; ok {
		return info
	}

	info := models.VenueInfo{
		Name:     v.Name,
		Category: "Other",
		City:     v.Location.City,
		State:    v.Location.State,
		Country:  v.Location.Country,
		Lat:      v.Location.Lat,
		Lng:      v.Location.Lng,
	}
	if info.Name == "" {
		info.Name = "Unknown Venue"
	}
	if len(v.Categories) > 0 && v.Categories[0].Name != "" {
		info.Category = v.Categories[0].Name
	}
	if info.City == "" {
		info.City = "Unknown"
	}
	if info.Country == "" {
		info.Country = "Unknown"
	}

	a.venues[id] = info
	a.venueIDs = append(a.venueIDs, id)
	return info
}

// cityLabel disambiguates city names: "city, state" when a region exists,
// "city, country" for non-US venues without one, else the bare city.
func cityLabel(info models.VenueInfo) string {
	if info.State != "" {
		return info.City + ", " + info.State
	}
	if info.Country != homeCountry {
		return info.City + ", " + info.Country
	}
	return info.City
}

func (a *aggregate) addMapPoint(lat, lng float64, venueName string) {
	lat = round4(lat)
	lng = round4(lng)
	key := fmt.Sprintf("%.4f,%.4f", lat, lng)

	cluster, ok := a.mapPoints[key]
	if !ok {
		cluster = &mapCluster{lat: lat, lng: lng}
		a.mapPoints[key] = cluster
		a.mapKeys = append(a.mapKeys, key)
	}
	cluster.names = append(cluster.names, venueName+"(1)")
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// venueByName returns the first registered venue with the given display
// name. Ranked venue lists carry the frozen attributes of that first match.
func (a *aggregate) venueByName(name string) (models.VenueInfo, bool) {
	for _, id := range a.venueIDs {
		if a.venues[id].Name == name {
			return a.venues[id], true
		}
	}
	return models.VenueInfo{}, false
}
