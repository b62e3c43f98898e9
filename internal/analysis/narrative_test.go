package analysis

import (
	"strings"
	"testing"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

func TestGenerateYearSummaryFull(t *testing.T) {
	s := &models.Stats{TotalCheckins: 200, LongestStreak: 45}
	cats := tallyOf(map[string]int{"Coffee Shop": 80, "Italian Restaurant": 50}, []string{"Coffee Shop", "Italian Restaurant"})
	cities := tallyOf(map[string]int{"New York, NY": 120, "Brooklyn, NY": 40, "Boston, MA": 20}, []string{"New York, NY", "Brooklyn, NY", "Boston, MA"})

	got := generateYearSummary(s, cats, cities)
	want := "A year of coffee and good food, based in New York with adventures in Brooklyn and Boston, fueled by a 45-day streak."
	if got != want {
		t.Errorf("summary = %q\nwant      %q", got, want)
	}
}

func TestGenerateYearSummaryFallbackCount(t *testing.T) {
	s := &models.Stats{TotalCheckins: 37}
	cats := tallyOf(map[string]int{"Laundromat": 37}, []string{"Laundromat"})

	got := generateYearSummary(s, cats, NewTally())
	if got != "A year of 37 check-ins." {
		t.Errorf("summary = %q", got)
	}
}

func TestGenerateYearSummarySkipsAwkwardCategories(t *testing.T) {
	s := &models.Stats{TotalCheckins: 50}
	// The top category is skipped; the next one carries the sentence.
	cats := tallyOf(map[string]int{"Doctor's Office": 30, "Wine Bar": 20}, []string{"Doctor's Office", "Wine Bar"})
	cities := tallyOf(map[string]int{"Chicago, IL": 50}, []string{"Chicago, IL"})

	got := generateYearSummary(s, cats, cities)
	if got != "A year of nights out, exploring Chicago." {
		t.Errorf("summary = %q", got)
	}
}

func TestGenerateYearSummarySingleOtherCity(t *testing.T) {
	s := &models.Stats{TotalCheckins: 50}
	cats := tallyOf(map[string]int{"Gym": 30}, []string{"Gym"})
	cities := tallyOf(map[string]int{"Denver, CO": 40, "Boulder, CO": 10}, []string{"Denver, CO", "Boulder, CO"})

	got := generateYearSummary(s, cats, cities)
	if got != "A year of fitness, based in Denver with adventures in Boulder." {
		t.Errorf("summary = %q", got)
	}
}

func TestGenerateYearSummaryHighlightPriority(t *testing.T) {
	cities := tallyOf(map[string]int{"Miami, FL": 10}, []string{"Miami, FL"})
	cats := tallyOf(map[string]int{"Beach": 10}, []string{"Beach"})

	// A long streak outranks the social highlight.
	s := &models.Stats{TotalCheckins: 100, LongestStreak: 30, FriendPct: 90}
	if got := generateYearSummary(s, cats, cities); !strings.Contains(got, "30-day streak") {
		t.Errorf("expected streak highlight, got %q", got)
	}

	// No streak: high friend share wins.
	s = &models.Stats{TotalCheckins: 100, LongestStreak: 5, FriendPct: 65}
	if got := generateYearSummary(s, cats, cities); !strings.Contains(got, "shared with loved ones") {
		t.Errorf("expected social highlight, got %q", got)
	}

	// Low friend share with enough solo check-ins.
	s = &models.Stats{TotalCheckins: 100, LongestStreak: 5, FriendPct: 10, SoloCheckins: 90}
	if got := generateYearSummary(s, cats, cities); !strings.Contains(got, "often flying solo") {
		t.Errorf("expected solo highlight, got %q", got)
	}

	// Nothing qualifies: no highlight clause, sentence still terminated.
	s = &models.Stats{TotalCheckins: 100, LongestStreak: 5, FriendPct: 40, SoloCheckins: 60}
	got := generateYearSummary(s, cats, cities)
	if strings.Contains(got, "streak") || strings.Contains(got, "loved ones") || strings.Contains(got, "solo") {
		t.Errorf("unexpected highlight in %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("summary not terminated: %q", got)
	}
}

func TestCategoryWordsDeduplicate(t *testing.T) {
	// Two categories mapping to the same phrase produce it once.
	cats := tallyOf(map[string]int{"Coffee Shop": 10, "Tea Room": 8, "Dive Bar": 5}, []string{"Coffee Shop", "Tea Room", "Dive Bar"})

	words := categoryWords(cats)
	want := []string{"coffee", "nights out"}
	if len(words) != 2 || words[0] != want[0] || words[1] != want[1] {
		t.Errorf("categoryWords = %v, want %v", words, want)
	}
}

func TestLocationClauseExcludesHomeCityDuplicates(t *testing.T) {
	// "Portland, OR" and "Portland, ME" share a city portion; the second
	// is not a distinct adventure destination.
	cities := tallyOf(
		map[string]int{"Portland, OR": 30, "Portland, ME": 10, "Salem, OR": 5},
		[]string{"Portland, OR", "Portland, ME", "Salem, OR"},
	)

	got := locationClause(cities)
	if got != "based in Portland with adventures in Salem" {
		t.Errorf("location clause = %q", got)
	}
}
