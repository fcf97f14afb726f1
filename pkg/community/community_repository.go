package community

import (
	"KeepEat-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		CreatePost(ctx context.Context, post *entities.CommunityPost) error
		GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error)
		GetPosts(ctx context.Context) ([]*entities.CommunityPost, error)
		DeletePost(ctx context.Context, id string) error
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreatePost(ctx context.Context, post *entities.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityRepository) GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error) {
	var post entities.CommunityPost
	if err := r.db.WithContext(ctx).Preload("User").Preload("Recipe").Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) GetPosts(ctx context.Context) ([]*entities.CommunityPost, error) {
	var posts []*entities.CommunityPost
	if err := r.db.WithContext(ctx).Preload("User").Preload("Recipe").Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *communityRepository) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CommunityPost{}).Error
}
