// Package analysis turns one year of raw check-in records into a wrapped
// report: frequency statistics, temporal and geospatial summaries, a
// personality archetype and a one-sentence year summary.
//
// The whole pipeline is a pure function of (records, privacy flag): no I/O,
// no state between invocations, safe for concurrent callers.
package analysis

import (
	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
	"github.com/swarmwrapped/wrapped-backend-go/internal/stats"
)

// Analyze runs the full pipeline over a batch of check-ins. When
// excludeSensitive is set, religious and educational venues are dropped
// before any statistics are computed.
//
// Returns nil when the batch (or the filtered batch) is empty; malformed
// records never cause a failure, every missing field has a safe default.
func Analyze(checkins []models.Checkin, excludeSensitive bool) *models.Stats {
	if len(checkins) == 0 {
		return nil
	}

	if excludeSensitive {
		checkins = FilterSensitive(checkins)
		if len(checkins) == 0 {
			return nil
		}
	}

	agg := Sweep(checkins)
	s := &models.Stats{TotalCheckins: agg.total}

	// Venue rankings carry the frozen attributes of the first registered
	// venue with each display name.
	s.UniqueVenues = len(agg.venues)
	s.TopVenues = make([]models.VenueCount, 0, 10)
	for _, kc := range agg.venueCounts.MostCommon(10) {
		vc := models.VenueCount{Name: kc.Key, Count: kc.Count}
		if info, ok := agg.venueByName(kc.Key); ok {
			vc.Category = info.Category
			vc.City = info.City
			vc.State = info.State
			vc.Country = info.Country
		}
		s.TopVenues = append(s.TopVenues, vc)
	}

	s.TopCategories = toNameCounts(agg.categoryCounts.MostCommon(10))
	s.UniqueCategories = agg.categoryCounts.Len()
	s.TopCities = toNameCounts(agg.cityCounts.MostCommon(10))
	s.UniqueCities = agg.cityCounts.Len()
	s.Countries = toNameCounts(agg.countryCounts.MostCommon(0))

	s.CheckinsWithFriends = agg.withFriends
	s.FriendPct = stats.Pct(agg.withFriends, agg.total)
	s.TopFriends = toNameCounts(agg.friendCounts.MostCommon(5))
	s.SoloCheckins = agg.total - agg.withFriends
	s.SoloPct = stats.Pct(s.SoloCheckins, agg.total)
	s.CheckinsWithShouts = agg.withShouts
	s.ShoutPct = stats.Pct(agg.withShouts, agg.total)
	s.TotalPhotos = agg.totalPhotos

	applyTemporal(agg, checkins, s)
	applyGeospatial(agg, s)

	s.Personality = classifyPersonality(s, agg.categoryCounts, agg.cityCounts)
	s.YearSummary = generateYearSummary(s, agg.categoryCounts, agg.cityCounts)

	return s
}

func toNameCounts(ranked []KeyCount) []models.NameCount {
	out := make([]models.NameCount, 0, len(ranked))
	for _, kc := range ranked {
		out = append(out, models.NameCount{Name: kc.Key, Count: kc.Count})
	}
	return out
}
