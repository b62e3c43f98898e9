package analysis

import (
	"strings"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

// sensitiveKeywords covers religious and educational venues. A check-in is
// dropped when any keyword appears (case-insensitive substring) in a category
// name or in the venue name.
var sensitiveKeywords = []string{
	"church", "cathedral", "mosque", "synagogue", "temple", "chapel",
	"spiritual center", "religious", "school", "elementary", "middle school",
	"high school", "preschool", "daycare", "nursery", "kindergarten",
}

// FilterSensitive returns the check-ins that do not match the sensitive
// keyword list. Pure; the input slice is not modified.
func FilterSensitive(checkins []models.Checkin) []models.Checkin {
	filtered := make([]models.Checkin, 0, len(checkins))
	for _, c := range checkins {
		if !isSensitive(c.Venue) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func isSensitive(venue models.Venue) bool {
	for _, cat := range venue.Categories {
		if containsSensitive(cat.Name) {
			return true
		}
	}
	return containsSensitive(venue.Name)
}

func containsSensitive(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
