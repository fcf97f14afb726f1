package food

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"sort"
	"time"
)

const (
	UrgencyUseNow   = "Use Now"
	UrgencyPlanSoon = "Plan Soon"
	UrgencySafe     = "Safe"
)

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysRemaining is the number of whole days between today and the expiry
// date, both normalized to midnight. Already-expired items yield a
// negative count.
func DaysRemaining(expiryDate, today time.Time) int {
	diff := midnight(expiryDate).Sub(midnight(today))
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// ClassifyUrgency maps an expiry date to its urgency category. Total:
// every date classifies, including dates in the past.
func ClassifyUrgency(expiryDate, today time.Time) string {
	days := DaysRemaining(expiryDate, today)
	if days <= 1 {
		return UrgencyUseNow
	}
	if days <= 7 {
		return UrgencyPlanSoon
	}
	return UrgencySafe
}

// SelectExpiring applies the notification settings to an inventory: items
// expiring within the configured window (0 <= daysRemaining <= days),
// ascending by expiry date. Disabled notifications yield an empty set
// regardless of inventory contents.
func SelectExpiring(items []*entities.FoodItem, settings domain.AppSettings, today time.Time) []*entities.FoodItem {
	if !settings.Enabled {
		return []*entities.FoodItem{}
	}

	expiring := make([]*entities.FoodItem, 0)
	for _, item := range items {
		days := DaysRemaining(item.ExpiryDate, today)
		if days >= 0 && days <= settings.Days {
			expiring = append(expiring, item)
		}
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpiryDate.Before(expiring[j].ExpiryDate)
	})

	return expiring
}
