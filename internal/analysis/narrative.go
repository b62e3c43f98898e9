package analysis

import (
	"fmt"
	"strings"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

type keywordPhrase struct {
	keyword string
	phrase  string
}

// categoryPhrases maps category keywords to readable phrases. Linear scan,
// first match wins, so order matters where keywords overlap (e.g. "tea"
// before "restaurant").
var categoryPhrases = []keywordPhrase{
	// Food & drink
	{"coffee", "coffee"},
	{"café", "coffee"},
	{"cafe", "coffee"},
	{"tea", "coffee"},
	{"restaurant", "good food"},
	{"food", "good food"},
	{"diner", "good food"},
	{"bistro", "good food"},
	{"eatery", "good food"},
	{"bakery", "good food"},
	{"pizza", "good food"},
	{"burger", "good food"},
	{"sushi", "good food"},
	{"taco", "good food"},
	{"bar", "nights out"},
	{"pub", "nights out"},
	{"brewery", "craft beer"},
	{"winery", "wine"},
	{"cocktail", "nights out"},
	// Activities
	{"gym", "fitness"},
	{"fitness", "fitness"},
	{"yoga", "wellness"},
	{"spa", "wellness"},
	{"park", "the outdoors"},
	{"trail", "the outdoors"},
	{"beach", "the outdoors"},
	{"garden", "the outdoors"},
	{"hotel", "travel"},
	{"airport", "travel"},
	{"train", "travel"},
	{"shop", "shopping"},
	{"store", "shopping"},
	{"mall", "shopping"},
	{"market", "shopping"},
	{"grocery", "errands"},
	{"theater", "entertainment"},
	{"cinema", "movies"},
	{"movie", "movies"},
	{"museum", "culture"},
	{"gallery", "culture"},
	{"concert", "live music"},
	{"music venue", "live music"},
	{"office", "work"},
	{"coworking", "work"},
}

// skipCategories are too specific or awkward to headline a year summary.
var skipCategories = []string{
	"spiritual", "church", "religious", "school", "education",
	"bank", "atm", "gas", "parking", "automotive", "medical",
	"doctor", "dentist", "hospital", "pharmacy", "laundry",
	"dry cleaner", "post office", "government",
}

// generateYearSummary composes the one-sentence year summary from category,
// location and highlight signals.
func generateYearSummary(s *models.Stats, categoryCounts, cityCounts *Tally) string {
	var parts []string

	// Opening clause: up to two category phrases from the top categories,
	// falling back to the raw check-in count.
	words := categoryWords(categoryCounts)
	if len(words) > 0 {
		parts = append(parts, fmt.Sprintf("A year of %s", strings.Join(words, " and ")))
	} else {
		parts = append(parts, fmt.Sprintf("A year of %d check-ins", s.TotalCheckins))
	}

	// Location clause.
	if cityCounts.Len() > 0 {
		parts = append(parts, locationClause(cityCounts))
	}

	// At most one highlight, by priority.
	switch {
	case s.LongestStreak >= 30:
		parts = append(parts, fmt.Sprintf("fueled by a %d-day streak", s.LongestStreak))
	case s.FriendPct >= 60:
		parts = append(parts, "shared with loved ones")
	case s.FriendPct <= 25 && s.SoloCheckins > 50:
		parts = append(parts, "often flying solo")
	}

	return strings.Join(parts, ", ") + "."
}

// categoryWords scans the top six categories for up to two distinct
// phrases, skipping awkward categories.
func categoryWords(categoryCounts *Tally) []string {
	var words []string
	for _, kc := range categoryCounts.MostCommon(6) {
		catLower := strings.ToLower(kc.Key)

		if matchesAny(catLower, skipCategories) {
			continue
		}

		for _, kp := range categoryPhrases {
			if strings.Contains(catLower, kp.keyword) {
				if !contains(words, kp.phrase) {
					words = append(words, kp.phrase)
				}
				break
			}
		}

		if len(words) >= 2 {
			break
		}
	}
	return words
}

// locationClause names the home city plus up to two other frequently
// visited cities.
func locationClause(cityCounts *Tally) string {
	ranked := cityCounts.MostCommon(4)
	homeCity := cityPortion(ranked[0].Key)

	var others []string
	for _, kc := range ranked[1:] {
		if city := cityPortion(kc.Key); city != homeCity {
			others = append(others, city)
		}
	}

	switch len(others) {
	case 0:
		return fmt.Sprintf("exploring %s", homeCity)
	case 1:
		return fmt.Sprintf("based in %s with adventures in %s", homeCity, others[0])
	default:
		return fmt.Sprintf("based in %s with adventures in %s and %s", homeCity, others[0], others[1])
	}
}

// cityPortion strips a ", state" or ", country" suffix from a city label.
func cityPortion(label string) string {
	return strings.TrimSpace(strings.Split(label, ",")[0])
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
