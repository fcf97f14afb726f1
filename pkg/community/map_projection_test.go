package community

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProjectPinsEmpty(t *testing.T) {
	pins := ProjectPins(nil)
	if len(pins) != 0 {
		t.Errorf("got %d pins, want 0", len(pins))
	}
}

func TestProjectPinsSinglePost(t *testing.T) {
	pins := ProjectPins([]pinSource{{PostID: "a", Latitude: 25.03, Longitude: 121.56}})

	if len(pins) != 1 {
		t.Fatalf("got %d pins, want 1", len(pins))
	}
	if !almostEqual(pins[0].Top, 50) || !almostEqual(pins[0].Left, 50) {
		t.Errorf("single post projected to (%.2f, %.2f), want center (50, 50)", pins[0].Top, pins[0].Left)
	}
}

func TestProjectPinsCorners(t *testing.T) {
	pins := ProjectPins([]pinSource{
		{PostID: "southwest", Latitude: 25.00, Longitude: 121.50},
		{PostID: "northeast", Latitude: 25.10, Longitude: 121.60},
	})

	if len(pins) != 2 {
		t.Fatalf("got %d pins, want 2", len(pins))
	}

	// Southernmost latitude lands at the bottom of the band, westernmost
	// longitude at the left edge.
	sw, ne := pins[0], pins[1]
	if !almostEqual(sw.Top, 90) || !almostEqual(sw.Left, 10) {
		t.Errorf("southwest pin at (%.2f, %.2f), want (90, 10)", sw.Top, sw.Left)
	}
	if !almostEqual(ne.Top, 10) || !almostEqual(ne.Left, 90) {
		t.Errorf("northeast pin at (%.2f, %.2f), want (10, 90)", ne.Top, ne.Left)
	}
}

func TestProjectPinsMidpoint(t *testing.T) {
	pins := ProjectPins([]pinSource{
		{PostID: "low", Latitude: 25.00, Longitude: 121.50},
		{PostID: "mid", Latitude: 25.05, Longitude: 121.55},
		{PostID: "high", Latitude: 25.10, Longitude: 121.60},
	})

	mid := pins[1]
	if !almostEqual(mid.Top, 50) || !almostEqual(mid.Left, 50) {
		t.Errorf("midpoint pin at (%.2f, %.2f), want (50, 50)", mid.Top, mid.Left)
	}
}

func TestProjectPinsDegenerateAxis(t *testing.T) {
	// All posts share a latitude: vertical axis collapses to center while
	// longitude still spreads.
	pins := ProjectPins([]pinSource{
		{PostID: "west", Latitude: 25.03, Longitude: 121.50},
		{PostID: "east", Latitude: 25.03, Longitude: 121.60},
	})

	for _, pin := range pins {
		if !almostEqual(pin.Top, 50) {
			t.Errorf("pin %s Top = %.2f, want 50", pin.PostID, pin.Top)
		}
	}
	if !almostEqual(pins[0].Left, 10) || !almostEqual(pins[1].Left, 90) {
		t.Errorf("Left = (%.2f, %.2f), want (10, 90)", pins[0].Left, pins[1].Left)
	}
}

func TestProjectPinsWithinBounds(t *testing.T) {
	pins := ProjectPins([]pinSource{
		{PostID: "a", Latitude: 24.99, Longitude: 121.47},
		{PostID: "b", Latitude: 25.17, Longitude: 121.63},
		{PostID: "c", Latitude: 25.08, Longitude: 121.52},
		{PostID: "d", Latitude: 25.02, Longitude: 121.59},
	})

	for _, pin := range pins {
		if pin.Top < 10 || pin.Top > 90 || pin.Left < 10 || pin.Left > 90 {
			t.Errorf("pin %s at (%.2f, %.2f) outside the 10-90 band", pin.PostID, pin.Top, pin.Left)
		}
	}
}

func TestDistanceKm(t *testing.T) {
	// Taipei Main Station to Taipei 101 is roughly 4 km.
	got := DistanceKm(25.0478, 121.5170, 25.0330, 121.5654)
	if got < 4.5 || got > 5.5 {
		t.Errorf("DistanceKm = %.2f km, want roughly 5 km", got)
	}
}

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if got := DistanceKm(25.03, 121.56, 25.03, 121.56); !almostEqual(got, 0) {
		t.Errorf("DistanceKm = %f, want 0", got)
	}
}
