package food

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"KeepEat-Backend/internal/utils/mailing"
	"KeepEat-Backend/internal/utils/storage"
	"KeepEat-Backend/pkg/locales"
	"KeepEat-Backend/pkg/settings"
	"KeepEat-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, location string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetExpiryCalendar(ctx context.Context, userID string) ([]domain.CalendarDay, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
		SendExpiryDigest(ctx context.Context, userID string) error
	}

	foodService struct {
		foodRepository  FoodRepository
		settingsService settings.SettingsService
		userService     user.UserService
		s3              storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, settingsService settings.SettingsService, userService user.UserService, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:  foodRepository,
		settingsService: settingsService,
		userService:     userService,
		s3:              s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	foodItem := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       req.Name,
		ExpiryDate: expiryDate,
		Location:   req.Location,
		Urgency:    ClassifyUrgency(expiryDate, now),
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem, now), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}

	if req.Location != "" {
		foodItem.Location = req.Location
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate

		// Urgency is derived from the expiry date. It is recomputed here
		// and on creation only, never re-classified in the background.
		foodItem.Urgency = ClassifyUrgency(expiryDate, time.Now())
	}

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, location string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, location)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item, now))
	}

	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if foodItem.UserID.String() != userID {
		return domain.FoodItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return toFoodItemResponse(foodItem, time.Now()), nil
}

func (s *foodService) GetExpiringItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	userSettings := s.settingsService.GetSettings(ctx, userID)

	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, "all")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiring := SelectExpiring(foodItems, userSettings, now)

	response := make([]domain.FoodItemResponse, 0, len(expiring))
	for _, item := range expiring {
		response = append(response, toFoodItemResponse(item, now))
	}

	return response, nil
}

func (s *foodService) GetExpiryCalendar(ctx context.Context, userID string) ([]domain.CalendarDay, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, "all")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	grouped := make(map[string][]domain.FoodItemResponse)
	for _, item := range foodItems {
		key := item.ExpiryDate.Format("2006-01-02")
		grouped[key] = append(grouped[key], toFoodItemResponse(item, now))
	}

	days := make([]domain.CalendarDay, 0, len(grouped))
	for date, items := range grouped {
		sort.SliceStable(items, func(i, j int) bool {
			return urgencyRank(items[i].Urgency) < urgencyRank(items[j].Urgency)
		})
		days = append(days, domain.CalendarDay{Date: date, Items: items})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) SendExpiryDigest(ctx context.Context, userID string) error {
	userSettings := s.settingsService.GetSettings(ctx, userID)
	if !userSettings.Enabled {
		return nil
	}

	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, "all")
	if err != nil {
		return err
	}

	expiring := SelectExpiring(foodItems, userSettings, time.Now())
	if len(expiring) == 0 {
		return nil
	}

	profile, err := s.userService.Me(ctx, userID)
	if err != nil {
		return err
	}

	subject, body := composeDigest(expiring, userSettings)
	return mailing.SendMail(profile.Email, subject, body)
}

func composeDigest(expiring []*entities.FoodItem, userSettings domain.AppSettings) (string, string) {
	strs := locales.Get(userSettings.Language)

	subject := locales.Format(strs.DigestSubject, map[string]string{
		"count": strconv.Itoa(len(expiring)),
	})

	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(locales.Format(strs.DigestIntro, map[string]string{
		"days": strconv.Itoa(userSettings.Days),
	}))
	b.WriteString("</p><ul>")
	for _, item := range expiring {
		b.WriteString("<li>")
		b.WriteString(locales.Format(strs.DigestItemLine, map[string]string{
			"name":     item.Name,
			"location": item.Location,
			"date":     item.ExpiryDate.Format("2006-01-02"),
		}))
		b.WriteString("</li>")
	}
	b.WriteString("</ul><p>")
	b.WriteString(strs.DigestFooter)
	b.WriteString("</p>")

	return subject, b.String()
}

func toFoodItemResponse(item *entities.FoodItem, now time.Time) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		ExpiryDate:    item.ExpiryDate,
		Location:      item.Location,
		Urgency:       ClassifyUrgency(item.ExpiryDate, now),
		DaysRemaining: DaysRemaining(item.ExpiryDate, now),
		ImageURL:      item.ImageURL,
		CreatedAt:     item.CreatedAt,
	}
}

func urgencyRank(urgency string) int {
	switch urgency {
	case UrgencyUseNow:
		return 0
	case UrgencyPlanSoon:
		return 1
	default:
		return 2
	}
}
