package analysis

import (
	"strings"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

type ruleKind int

const (
	ruleCategoryShare ruleKind = iota
	ruleCountries
	ruleFriendShare
	ruleUniqueRatio
	ruleLowUniqueRatio
	ruleHomeCityShare
	ruleDaypartShare
)

// archetype is one data-driven classification rule. Exactly the fields for
// its Kind are set; everything else stays zero.
type archetype struct {
	ID          string
	Name        string
	Emoji       string
	Description string

	Kind ruleKind

	Keywords []string // category keyword substrings
	MinShare float64  // minimum share of total check-ins

	MinCountries int
	MinCities    int

	MinFriendPct   float64
	MinUniqueRatio float64
	MaxUniqueRatio float64
	MinHomeCityPct float64

	Daypart string // "morning" or "night"
}

// minDaypartShare is the implicit floor a daypart must exceed before a
// time-based archetype scores at all.
const minDaypartShare = 0.35

// archetypeCatalogue is scored top to bottom; the first rule reaching the
// maximum score wins, so the order here is part of the contract.
var archetypeCatalogue = []archetype{
	{
		ID:          "coffee_connoisseur",
		Name:        "The Coffee Connoisseur",
		Emoji:       "☕",
		Description: "Your year was fueled by caffeine. Coffee shops were your go-to destination.",
		Kind:        ruleCategoryShare,
		Keywords:    []string{"Coffee Shop", "Café", "Tea Room", "Bakery"},
		MinShare:    0.15,
	},
	{
		ID:           "globe_trotter",
		Name:         "The Globe Trotter",
		Emoji:        "🌍",
		Description:  "You're a true explorer. Multiple countries and countless cities on your map.",
		Kind:         ruleCountries,
		MinCountries: 3,
		MinCities:    30,
	},
	{
		ID:          "foodie",
		Name:        "The Foodie",
		Emoji:       "🍽️",
		Description: "Life's too short for bad food. Restaurants dominated your check-ins.",
		Kind:        ruleCategoryShare,
		Keywords:    []string{"Restaurant", "Food", "Diner", "Bistro", "Eatery"},
		MinShare:    0.20,
	},
	{
		ID:          "night_owl",
		Name:        "The Night Owl",
		Emoji:       "🦉",
		Description: "The night is young! Most of your adventures happened after dark.",
		Kind:        ruleDaypartShare,
		Daypart:     "night",
	},
	{
		ID:          "early_bird",
		Name:        "The Early Bird",
		Emoji:       "🌅",
		Description: "Rise and shine! You make the most of mornings.",
		Kind:        ruleDaypartShare,
		Daypart:     "morning",
	},
	{
		ID:          "fitness_fanatic",
		Name:        "The Fitness Fanatic",
		Emoji:       "💪",
		Description: "No excuses! Gyms and outdoor activities kept you moving.",
		Kind:        ruleCategoryShare,
		Keywords:    []string{"Gym", "Fitness", "Yoga", "Park", "Trail", "Pool"},
		MinShare:    0.15,
	},
	{
		ID:           "social_butterfly",
		Name:         "The Social Butterfly",
		Emoji:        "🦋",
		Description:  "Never alone! Most of your check-ins were with friends and family.",
		Kind:         ruleFriendShare,
		MinFriendPct: 60,
	},
	{
		ID:             "adventurer",
		Name:           "The Adventurer",
		Emoji:          "🧭",
		Description:    "Variety is the spice of life. You rarely visit the same place twice.",
		Kind:           ruleUniqueRatio,
		MinUniqueRatio: 0.7,
	},
	{
		ID:             "the_regular",
		Name:           "The Regular",
		Emoji:          "🪑",
		Description:    "You've got your spots. The staff knows your order and your name.",
		Kind:           ruleLowUniqueRatio,
		MaxUniqueRatio: 0.35,
	},
	{
		ID:             "homebody",
		Name:           "The Homebody",
		Emoji:          "🏠",
		Description:    "Home is where the heart is. You know your neighborhood inside and out.",
		Kind:           ruleHomeCityShare,
		MinHomeCityPct: 80,
	},
	{
		ID:          "jet_setter",
		Name:        "The Jet Setter",
		Emoji:       "✈️",
		Description: "Always on the move! Airports are practically your second home.",
		Kind:        ruleCategoryShare,
		Keywords:    []string{"Airport", "Plane", "Terminal"},
		MinShare:    0.10,
	},
}

// defaultArchetype is returned without scoring when there is nothing to
// classify.
const defaultArchetype = "adventurer"

// classifyPersonality scores every archetype against the aggregated stats
// and returns the first strict maximum in catalogue order.
func classifyPersonality(s *models.Stats, categoryCounts, cityCounts *Tally) *models.Personality {
	if s.TotalCheckins == 0 {
		return archetypeByID(defaultArchetype)
	}

	best := archetypeCatalogue[0]
	bestScore := scoreArchetype(archetypeCatalogue[0], s, categoryCounts, cityCounts)
	for _, a := range archetypeCatalogue[1:] {
		if score := scoreArchetype(a, s, categoryCounts, cityCounts); score > bestScore {
			best = a
			bestScore = score
		}
	}

	return &models.Personality{
		Type:        best.ID,
		Name:        best.Name,
		Emoji:       best.Emoji,
		Description: best.Description,
	}
}

// scoreArchetype evaluates one rule, yielding a score in [0,1] or 0 when the
// rule's condition is unmet.
func scoreArchetype(a archetype, s *models.Stats, categoryCounts, cityCounts *Tally) float64 {
	total := s.TotalCheckins
	uniqueRatio := float64(s.UniqueVenues) / float64(total)

	switch a.Kind {
	case ruleCategoryShare:
		matched := 0
		for _, cat := range categoryCounts.Keys() {
			if matchesAnyKeyword(cat, a.Keywords) {
				matched += categoryCounts.Count(cat)
			}
		}
		share := float64(matched) / float64(total)
		if share >= a.MinShare {
			return share
		}

	case ruleCountries:
		score := 0.0
		if len(s.Countries) >= a.MinCountries {
			score = 0.8
		}
		if s.UniqueCities >= a.MinCities {
			score = 0.9
		}
		return score

	case ruleFriendShare:
		if s.FriendPct >= a.MinFriendPct {
			return s.FriendPct / 100
		}

	case ruleUniqueRatio:
		if uniqueRatio >= a.MinUniqueRatio {
			return uniqueRatio
		}

	case ruleLowUniqueRatio:
		if uniqueRatio <= a.MaxUniqueRatio {
			return 1 - uniqueRatio
		}

	case ruleHomeCityShare:
		if top, ok := cityCounts.Max(); ok {
			homePct := float64(top.Count) / float64(total) * 100
			if homePct >= a.MinHomeCityPct {
				return homePct / 100
			}
		}

	case ruleDaypartShare:
		tod := s.TimeOfDay
		totalTime := tod.Morning + tod.Afternoon + tod.Evening + tod.Night
		if totalTime == 0 {
			return 0
		}
		var bucket int
		switch a.Daypart {
		case "morning":
			bucket = tod.Morning
		case "afternoon":
			bucket = tod.Afternoon
		case "evening":
			bucket = tod.Evening
		case "night":
			bucket = tod.Night
		}
		share := float64(bucket) / float64(totalTime)
		if share > minDaypartShare {
			return share
		}
	}
	return 0
}

func matchesAnyKeyword(category string, keywords []string) bool {
	lower := strings.ToLower(category)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func archetypeByID(id string) *models.Personality {
	for _, a := range archetypeCatalogue {
		if a.ID == id {
			return &models.Personality{
				Type:        a.ID,
				Name:        a.Name,
				Emoji:       a.Emoji,
				Description: a.Description,
			}
		}
	}
	return nil
}
