package food

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func digestItem(name, location string, expiry time.Time) *entities.FoodItem {
	return &entities.FoodItem{
		ID:         uuid.New(),
		Name:       name,
		Location:   location,
		ExpiryDate: expiry,
	}
}

func TestComposeDigestEnglish(t *testing.T) {
	expiry := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	expiring := []*entities.FoodItem{
		digestItem("Milk", "Fridge", expiry),
		digestItem("Spinach", "Fridge", expiry.AddDate(0, 0, 1)),
	}
	userSettings := domain.AppSettings{Enabled: true, Days: 3, Language: domain.LanguageEnglish}

	subject, body := composeDigest(expiring, userSettings)

	if !strings.Contains(subject, "2") {
		t.Errorf("subject %q does not mention the item count", subject)
	}
	for _, want := range []string{"Milk", "Spinach", "2025-03-12", "2025-03-13", "Fridge"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
}

func TestComposeDigestTraditionalChinese(t *testing.T) {
	expiry := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	expiring := []*entities.FoodItem{digestItem("豆腐", "Fridge", expiry)}
	userSettings := domain.AppSettings{Enabled: true, Days: 3, Language: domain.LanguageTraditional}

	subject, body := composeDigest(expiring, userSettings)

	if !strings.Contains(subject, "到期") {
		t.Errorf("subject %q is not localized", subject)
	}
	if !strings.Contains(body, "豆腐") {
		t.Errorf("body missing item name: %s", body)
	}
}
