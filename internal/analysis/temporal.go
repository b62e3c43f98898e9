package analysis

import (
	"fmt"
	"time"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
	"github.com/swarmwrapped/wrapped-backend-go/internal/stats"
)

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var monthOrder = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// applyTemporal derives all time-based fields from the aggregation output.
func applyTemporal(agg *aggregate, checkins []models.Checkin, s *models.Stats) {
	// Distributions, zero-filled for inactive buckets.
	s.HourlyDistribution = make(map[string]int, 24)
	for h := 0; h < 24; h++ {
		s.HourlyDistribution[fmt.Sprintf("%d", h)] = agg.hourly[h]
	}
	s.DailyDistribution = make(map[string]int, len(weekdayOrder))
	for _, d := range weekdayOrder {
		s.DailyDistribution[d] = agg.daily[d]
	}
	s.MonthlyDistribution = make(map[string]int, len(monthOrder))
	for _, m := range monthOrder {
		s.MonthlyDistribution[m] = agg.monthly[m]
	}

	// Peak hour: scan from 0 so ties resolve to the smallest hour.
	peak := 0
	for h := 1; h < 24; h++ {
		if agg.hourly[h] > agg.hourly[peak] {
			peak = h
		}
	}
	s.PeakHour = peak
	s.PeakHourFormatted = formatHour(peak)

	s.BusiestDay = maxByOrder(agg.daily, weekdayOrder)
	s.BusiestMonth = maxByOrder(agg.monthly, monthOrder)

	// Activity span.
	s.DaysActive = len(agg.sortedDates)
	if len(agg.sortedDates) > 0 {
		first := mustParseDate(agg.sortedDates[0])
		last := mustParseDate(agg.sortedDates[len(agg.sortedDates)-1])
		s.TotalDays = daysBetween(first, last) + 1
		s.ActivityPct = stats.Pct(s.DaysActive, s.TotalDays)
		s.AvgPerActiveDay = stats.Round1(float64(agg.total) / float64(s.DaysActive))
	}

	if busiest, ok := agg.perDay.Max(); ok {
		s.MaxCheckinsDay = formatDateOrdinal(mustParseDate(busiest.Key))
		s.MaxCheckinsCount = busiest.Count
	}

	s.LongestStreak = longestStreak(agg.sortedDates)
	s.LongestGapDays, s.LongestGapStart, s.LongestGapEnd = longestGap(agg.sortedDates)

	// Daypart buckets: morning [5,12), afternoon [12,17), evening [17,21),
	// night [21,24) and [0,5).
	s.TimeOfDay = models.TimeOfDay{
		Morning:   sumHours(agg.hourly, 5, 12),
		Afternoon: sumHours(agg.hourly, 12, 17),
		Evening:   sumHours(agg.hourly, 17, 21),
		Night:     sumHours(agg.hourly, 21, 24) + sumHours(agg.hourly, 0, 5),
	}
	s.TimePersonality = timePersonality(s.TimeOfDay)

	weekend := agg.daily["Saturday"] + agg.daily["Sunday"]
	weekday := 0
	for _, d := range weekdayOrder[:5] {
		weekday += agg.daily[d]
	}
	s.WeekendPct = stats.Pct(weekend, weekend+weekday)
	s.WeekdayPct = stats.Pct(weekday, weekend+weekday)

	s.FirstCheckin, s.LastCheckin = firstAndLast(checkins)

	s.MostUniqueVenuesDay, s.MostUniqueVenuesCount = mostDistinctVenuesDay(agg)
}

// formatHour renders an hour of day as 0-11 -> "<h>am", 12-23 -> "<h-12>pm"
// with 12 itself shown as "12pm".
func formatHour(h int) string {
	if h < 12 {
		return fmt.Sprintf("%dam", h)
	}
	pm := h - 12
	if pm == 0 {
		pm = 12
	}
	return fmt.Sprintf("%dpm", pm)
}

// ordinal returns 1st, 2nd, 3rd, 4th... with the 11-13 exception.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// formatDateOrdinal formats a date as "January 1st".
func formatDateOrdinal(t time.Time) string {
	return t.Format("January") + " " + ordinal(t.Day())
}

// maxByOrder picks the highest-count key, scanning keys in the given fixed
// order so ties resolve to the earliest calendar entry.
func maxByOrder(counts map[string]int, order []string) string {
	best := "Unknown"
	bestCount := -1
	for _, k := range order {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	if bestCount <= 0 {
		return "Unknown"
	}
	return best
}

// longestStreak returns the longest run of calendar-consecutive dates in a
// sorted distinct-date list. A single date is a streak of 1.
func longestStreak(sortedDates []string) int {
	if len(sortedDates) == 0 {
		return 0
	}

	maxStreak, current := 1, 1
	for i := 1; i < len(sortedDates); i++ {
		prev := mustParseDate(sortedDates[i-1])
		curr := mustParseDate(sortedDates[i])

		if daysBetween(prev, curr) == 1 {
			current++
			if current > maxStreak {
				maxStreak = current
			}
		} else {
			current = 1
		}
	}
	return maxStreak
}

// longestGap returns the largest number of empty days strictly between two
// consecutive active dates, with the bounding dates. Fewer than two distinct
// dates (or no gap at all) reports 0 with empty bounds.
func longestGap(sortedDates []string) (int, string, string) {
	maxGap := 0
	var start, end string

	for i := 1; i < len(sortedDates); i++ {
		prev := mustParseDate(sortedDates[i-1])
		curr := mustParseDate(sortedDates[i])

		gap := daysBetween(prev, curr) - 1
		if gap > maxGap {
			maxGap = gap
			start = sortedDates[i-1]
			end = sortedDates[i]
		}
	}
	return maxGap, start, end
}

func sumHours(hourly [24]int, from, to int) int {
	var sum int
	for h := from; h < to; h++ {
		sum += hourly[h]
	}
	return sum
}

// timePersonality labels the dominant daypart. Ties resolve in bucket order,
// morning first.
func timePersonality(tod models.TimeOfDay) string {
	buckets := []struct {
		count int
		label string
	}{
		{tod.Morning, "Early Bird"},
		{tod.Afternoon, "Day Explorer"},
		{tod.Evening, "Evening Wanderer"},
		{tod.Night, "Night Owl"},
	}

	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.count > best.count {
			best = b
		}
	}
	return best.label
}

// firstAndLast summarizes the earliest and latest check-ins by timestamp,
// keeping the first encountered on ties.
func firstAndLast(checkins []models.Checkin) (*models.CheckinSummary, *models.CheckinSummary) {
	if len(checkins) == 0 {
		return nil, nil
	}

	first, last := checkins[0], checkins[0]
	for _, c := range checkins[1:] {
		if c.CreatedAt < first.CreatedAt {
			first = c
		}
		if c.CreatedAt > last.CreatedAt {
			last = c
		}
	}
	return summarize(first), summarize(last)
}

func summarize(c models.Checkin) *models.CheckinSummary {
	name := c.Venue.Name
	if name == "" {
		name = "Unknown"
	}
	local := c.LocalTime()
	return &models.CheckinSummary{
		Venue: name,
		Date:  formatDateOrdinal(local),
		Time:  local.Format("3:04 PM"),
	}
}

// mostDistinctVenuesDay finds the local date with the most distinct venue
// names. A stable max-scan over date-sorted keys breaks ties toward the
// earliest date.
func mostDistinctVenuesDay(agg *aggregate) (string, int) {
	var bestDay string
	bestCount := 0
	for _, date := range agg.sortedDates {
		if n := len(agg.venuesPerDay[date]); n > bestCount {
			bestDay = date
			bestCount = n
		}
	}
	return bestDay, bestCount
}

func mustParseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
