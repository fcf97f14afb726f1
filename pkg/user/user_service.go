package user

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"KeepEat-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfileResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		AddFriend(ctx context.Context, req domain.FriendRequest, userID string) error
		RemoveFriend(ctx context.Context, req domain.FriendRequest, userID string) error
		GetFriends(ctx context.Context, userID string) ([]domain.UserProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfileResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserProfileResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleStandard
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserProfileResponse{}, err
	}

	return toUserProfileResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	return toUserProfileResponse(user), nil
}

func (s *userService) AddFriend(ctx context.Context, req domain.FriendRequest, userID string) error {
	if req.FriendID == userID {
		return domain.ErrFriendSelf
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	friend, err := s.userRepository.GetUserByID(ctx, req.FriendID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	return s.userRepository.AddFriend(ctx, user, friend)
}

func (s *userService) RemoveFriend(ctx context.Context, req domain.FriendRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	friend, err := s.userRepository.GetUserByID(ctx, req.FriendID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	return s.userRepository.RemoveFriend(ctx, user, friend)
}

func (s *userService) GetFriends(ctx context.Context, userID string) ([]domain.UserProfileResponse, error) {
	friends, err := s.userRepository.GetFriends(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	response := make([]domain.UserProfileResponse, 0, len(friends))
	for _, friend := range friends {
		response = append(response, toUserProfileResponse(friend))
	}

	return response, nil
}

func toUserProfileResponse(user *entities.User) domain.UserProfileResponse {
	return domain.UserProfileResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		OnlineStatus: user.OnlineStatus,
		CreatedAt:    user.CreatedAt,
	}
}
