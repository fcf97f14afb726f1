package user

import (
	"KeepEat-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		AddFriend(ctx context.Context, user *entities.User, friend *entities.User) error
		RemoveFriend(ctx context.Context, user *entities.User, friend *entities.User) error
		GetFriends(ctx context.Context, userID string) ([]*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) AddFriend(ctx context.Context, user *entities.User, friend *entities.User) error {
	return r.db.WithContext(ctx).Model(user).Association("Friends").Append(friend)
}

func (r *userRepository) RemoveFriend(ctx context.Context, user *entities.User, friend *entities.User) error {
	return r.db.WithContext(ctx).Model(user).Association("Friends").Delete(friend)
}

func (r *userRepository) GetFriends(ctx context.Context, userID string) ([]*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Friends").Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return user.Friends, nil
}
