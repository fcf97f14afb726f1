package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login successful"
	MessageSuccessGetMe        = "profile retrieved successfully"
	MessageSuccessAddFriend    = "friend added successfully"
	MessageSuccessRemoveFriend = "friend removed successfully"
	MessageSuccessGetFriends   = "friends retrieved successfully"

	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "failed to login"
	MessageFailedGetMe        = "failed to retrieve profile"
	MessageFailedAddFriend    = "failed to add friend"
	MessageFailedRemoveFriend = "failed to remove friend"
	MessageFailedGetFriends   = "failed to retrieve friends"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrAlreadyFriends     = errors.New("already friends")
	ErrFriendSelf         = errors.New("cannot add yourself as a friend")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=Standard Volunteer Senior"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserProfileResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Role         string    `json:"role"`
		OnlineStatus string    `json:"online_status,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	FriendRequest struct {
		FriendID string `json:"friend_id" validate:"required,uuid"`
	}
)
