package analysis

import (
	"math"
	"strings"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
	"github.com/swarmwrapped/wrapped-backend-go/internal/spatial"
	"github.com/swarmwrapped/wrapped-backend-go/internal/stats"
)

// applyGeospatial derives home city, furthest venue, international share and
// the map point clusters.
func applyGeospatial(agg *aggregate, s *models.Stats) {
	s.MapPoints = make([]models.MapPoint, 0, len(agg.mapKeys))
	for _, key := range agg.mapKeys {
		cluster := agg.mapPoints[key]
		s.MapPoints = append(s.MapPoints, models.MapPoint{
			Lat:    cluster.lat,
			Lng:    cluster.lng,
			Venues: strings.Join(cluster.names, ","),
		})
	}

	oneTime := 0
	for _, k := range agg.venueCounts.Keys() {
		if agg.venueCounts.Count(k) == 1 {
			oneTime++
		}
	}
	s.OneTimeVenues = oneTime
	s.OneTimePct = stats.Pct(oneTime, len(agg.venues))

	if agg.cityCounts.Len() > 0 && len(agg.venues) > 0 {
		home := agg.cityCounts.MostCommon(1)[0].Key
		s.HomeCity = home
		s.FurthestVenue = furthestVenue(agg, home)
	}

	s.International = agg.total - agg.usCheckins
	s.InternationalPct = stats.Pct(s.International, agg.total)
}

// furthestVenue estimates home coordinates as the mean position of all
// coordinate-bearing venues in the home city, then returns the registered
// venue furthest from them. Nil when no coordinate data exists (a zero
// maximum also yields no entry).
func furthestVenue(agg *aggregate, homeLabel string) *models.RemoteVenue {
	// The label may carry a ", state" or ", country" suffix; venues store
	// the bare city.
	homeCity := strings.Split(homeLabel, ",")[0]

	var lats, lngs []float64
	for _, id := range agg.venueIDs {
		v := agg.venues[id]
		if v.City == homeCity && v.Lat != nil && v.Lng != nil {
			lats = append(lats, *v.Lat)
			lngs = append(lngs, *v.Lng)
		}
	}
	if len(lats) == 0 {
		return nil
	}

	homeLat := stats.Mean(lats)
	homeLng := stats.Mean(lngs)

	var furthest *models.VenueInfo
	maxDist := 0.0
	for _, id := range agg.venueIDs {
		v := agg.venues[id]
		if v.Lat == nil || v.Lng == nil {
			continue
		}
		if d := spatial.HaversineMiles(homeLat, homeLng, *v.Lat, *v.Lng); d > maxDist {
			maxDist = d
			info := v
			furthest = &info
		}
	}
	if furthest == nil {
		return nil
	}

	return &models.RemoteVenue{
		Name:          furthest.Name,
		City:          furthest.City,
		Country:       furthest.Country,
		DistanceMiles: int(math.Round(maxDist)),
	}
}
