package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem      = "food item added successfully"
	MessageSuccessUpdateFoodItem   = "food item updated successfully"
	MessageSuccessDeleteFoodItem   = "food item deleted successfully"
	MessageSuccessGetFoodItems     = "food items retrieved successfully"
	MessageSuccessUploadFoodImage  = "food image uploaded successfully"
	MessageSuccessGetExpiringItems = "expiring items retrieved successfully"
	MessageSuccessGetCalendar      = "expiry calendar retrieved successfully"
	MessageSuccessSendDigest       = "expiry digest sent"

	MessageFailedAddFoodItem      = "failed to add food item"
	MessageFailedUpdateFoodItem   = "failed to update food item"
	MessageFailedDeleteFoodItem   = "failed to delete food item"
	MessageFailedGetFoodItems     = "failed to retrieve food items"
	MessageFailedUploadFoodImage  = "failed to upload food image"
	MessageFailedGetExpiringItems = "failed to retrieve expiring items"
	MessageFailedGetCalendar      = "failed to retrieve expiry calendar"
	MessageFailedSendDigest       = "failed to send expiry digest"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidLocation    = errors.New("invalid storage location")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
		Location   string `json:"location" validate:"required,oneof=Fridge Freezer Pantry"`
	}

	UpdateFoodItemRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
		Location   string `json:"location" validate:"omitempty,oneof=Fridge Freezer Pantry"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodItemResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		ExpiryDate    time.Time `json:"expiry_date"`
		Location      string    `json:"location"`
		Urgency       string    `json:"urgency"`
		DaysRemaining int       `json:"days_remaining"`
		ImageURL      string    `json:"image_url,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CalendarDay struct {
		Date  string             `json:"date"` // YYYY-MM-DD
		Items []FoodItemResponse `json:"items"`
	}
)
