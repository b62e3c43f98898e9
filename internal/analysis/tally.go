package analysis

import "sort"

// Tally is an insertion-ordered counter. Ranking is by count descending with
// ties broken by first-seen order, so results are reproducible for inputs
// that preserve first-encounter order.
type Tally struct {
	keys   []string
	counts map[string]int
}

// KeyCount is one ranked tally entry.
type KeyCount struct {
	Key   string
	Count int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increments the count for key, registering it on first sight.
func (t *Tally) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Count returns the count for key (0 if never seen).
func (t *Tally) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.keys)
}

// Sum returns the total of all counts.
func (t *Tally) Sum() int {
	var sum int
	for _, k := range t.keys {
		sum += t.counts[k]
	}
	return sum
}

// Keys returns the keys in first-seen order. The returned slice is shared;
// callers must not modify it.
func (t *Tally) Keys() []string {
	return t.keys
}

// MostCommon returns the n highest-count entries, ties in first-seen order.
// n <= 0 returns the full ranking.
func (t *Tally) MostCommon(n int) []KeyCount {
	ranked := make([]KeyCount, 0, len(t.keys))
	for _, k := range t.keys {
		ranked = append(ranked, KeyCount{Key: k, Count: t.counts[k]})
	}

	// Stable sort keeps insertion order between equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Max returns the first maximal entry in first-seen order, or false if the
// tally is empty.
func (t *Tally) Max() (KeyCount, bool) {
	if len(t.keys) == 0 {
		return KeyCount{}, false
	}

	best := KeyCount{Key: t.keys[0], Count: t.counts[t.keys[0]]}
	for _, k := range t.keys[1:] {
		if t.counts[k] > best.Count {
			best = KeyCount{Key: k, Count: t.counts[k]}
		}
	}
	return best, true
}
