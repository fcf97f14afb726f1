package food

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testToday = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testToday.AddDate(0, 0, offset)
}

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"today", day(0), 0},
		{"tomorrow", day(1), 1},
		{"next week", day(7), 7},
		{"expired yesterday", day(-1), -1},
		{"expired last week", day(-5), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(tt.expiry, testToday); got != tt.want {
				t.Errorf("DaysRemaining(%v) = %d, want %d", tt.expiry, got, tt.want)
			}
		})
	}
}

func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	// Late evening today against an early morning expiry tomorrow is
	// still one whole day.
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)

	if got := DaysRemaining(expiry, today); got != 1 {
		t.Errorf("DaysRemaining = %d, want 1", got)
	}
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"expired", day(-3), UrgencyUseNow},
		{"expires today", day(0), UrgencyUseNow},
		{"expires tomorrow", day(1), UrgencyUseNow},
		{"two days out", day(2), UrgencyPlanSoon},
		{"seven days out", day(7), UrgencyPlanSoon},
		{"eight days out", day(8), UrgencySafe},
		{"next month", day(30), UrgencySafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyUrgency(tt.expiry, testToday); got != tt.want {
				t.Errorf("ClassifyUrgency(%v) = %q, want %q", tt.expiry, got, tt.want)
			}
		})
	}
}

func item(name string, expiry time.Time) *entities.FoodItem {
	return &entities.FoodItem{
		ID:         uuid.New(),
		Name:       name,
		ExpiryDate: expiry,
	}
}

func TestSelectExpiringDisabled(t *testing.T) {
	items := []*entities.FoodItem{item("milk", day(0)), item("eggs", day(1))}
	settings := domain.AppSettings{Enabled: false, Days: 3}

	got := SelectExpiring(items, settings, testToday)
	if len(got) != 0 {
		t.Errorf("disabled notifications returned %d items, want 0", len(got))
	}
}

func TestSelectExpiringWindow(t *testing.T) {
	items := []*entities.FoodItem{
		item("expired", day(-1)),
		item("today", day(0)),
		item("in window", day(3)),
		item("outside window", day(4)),
	}
	settings := domain.AppSettings{Enabled: true, Days: 3}

	got := SelectExpiring(items, settings, testToday)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].Name != "today" || got[1].Name != "in window" {
		t.Errorf("got [%s, %s], want [today, in window]", got[0].Name, got[1].Name)
	}
}

func TestSelectExpiringZeroDays(t *testing.T) {
	items := []*entities.FoodItem{item("today", day(0)), item("tomorrow", day(1))}
	settings := domain.AppSettings{Enabled: true, Days: 0}

	got := SelectExpiring(items, settings, testToday)
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if got[0].Name != "today" {
		t.Errorf("got %s, want today", got[0].Name)
	}
}

func TestSelectExpiringSortedByExpiry(t *testing.T) {
	items := []*entities.FoodItem{
		item("later", day(3)),
		item("sooner", day(1)),
		item("middle", day(2)),
	}
	settings := domain.AppSettings{Enabled: true, Days: 7}

	got := SelectExpiring(items, settings, testToday)
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	for i, want := range []string{"sooner", "middle", "later"} {
		if got[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].Name, want)
		}
	}
}
