package analysis

import (
	"testing"
	"time"

	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

func TestFurthestVenueDistance(t *testing.T) {
	bodega := venueSpec{id: "v1", name: "Corner Bodega", category: "Deli", city: "New York", state: "NY", country: "United States", lat: fp(40.7128), lng: fp(-74.0060)}
	griffith := venueSpec{id: "v2", name: "Griffith Observatory", category: "Planetarium", city: "Los Angeles", state: "CA", country: "United States", lat: fp(34.0522), lng: fp(-118.2437)}

	s := Analyze([]models.Checkin{
		checkin(bodega, ts(time.January, 1, 9)),
		checkin(bodega, ts(time.January, 2, 9)),
		checkin(griffith, ts(time.January, 3, 9)),
	}, false)

	if s.HomeCity != "New York, NY" {
		t.Fatalf("home city = %q, want New York, NY", s.HomeCity)
	}
	fv := s.FurthestVenue
	if fv == nil {
		t.Fatal("expected a furthest venue")
	}
	if fv.Name != "Griffith Observatory" || fv.City != "Los Angeles" {
		t.Errorf("furthest venue = %+v", fv)
	}
	// Great-circle NYC to LA on a 3959 mile sphere.
	if fv.DistanceMiles < 2440 || fv.DistanceMiles > 2452 {
		t.Errorf("distance = %d miles, want ~2446", fv.DistanceMiles)
	}
}

func TestFurthestVenueNeedsCoordinates(t *testing.T) {
	a := venueSpec{id: "v1", name: "A", category: "Café", city: "Denver", state: "CO", country: "United States"}
	b := venueSpec{id: "v2", name: "B", category: "Bar", city: "Boulder", state: "CO", country: "United States"}

	s := Analyze([]models.Checkin{
		checkin(a, ts(time.January, 1, 9)),
		checkin(a, ts(time.January, 2, 9)),
		checkin(b, ts(time.January, 3, 9)),
	}, false)

	if s.FurthestVenue != nil {
		t.Errorf("furthest venue without coordinates = %+v, want nil", s.FurthestVenue)
	}
}

func TestInternationalShare(t *testing.T) {
	home := venueSpec{id: "v1", name: "Diner", category: "Diner", city: "Chicago", state: "IL", country: "United States"}
	paris := venueSpec{id: "v2", name: "Le Zinc", category: "Wine Bar", city: "Paris", country: "France"}

	s := Analyze([]models.Checkin{
		checkin(home, ts(time.January, 1, 9)),
		checkin(home, ts(time.January, 2, 9)),
		checkin(home, ts(time.January, 3, 9)),
		checkin(paris, ts(time.June, 1, 20)),
	}, false)

	if s.International != 1 {
		t.Errorf("international = %d, want 1", s.International)
	}
	if s.InternationalPct != 25.0 {
		t.Errorf("international pct = %v, want 25", s.InternationalPct)
	}
	// Non-US cities are labeled with their country.
	found := false
	for _, c := range s.TopCities {
		if c.Name == "Paris, France" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Paris, France in top cities: %+v", s.TopCities)
	}
}

func TestOneTimeVenues(t *testing.T) {
	s := Analyze(coffeeBatch(), false)

	// Only the library is visited exactly once in the batch.
	if s.OneTimeVenues != 1 {
		t.Errorf("one-time venues = %d, want 1", s.OneTimeVenues)
	}
	if s.OneTimePct != 20.0 {
		t.Errorf("one-time pct = %v, want 20", s.OneTimePct)
	}
}
