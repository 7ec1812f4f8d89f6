package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sanchita-88/meal-planner/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		AddInteraction(ctx context.Context, interaction *entities.FoodInteraction) error
		AdjustTagScore(ctx context.Context, userID uuid.UUID, tag string, delta int) error
		GetTagScores(ctx context.Context, userID string) (map[string]int, error)
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

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) AddInteraction(ctx context.Context, interaction *entities.FoodInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// AdjustTagScore adds delta to the user's learned weight for a tag,
// creating the row on first sight of the tag.
func (r *userRepository) AdjustTagScore(ctx context.Context, userID uuid.UUID, tag string, delta int) error {
	var score entities.TagScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tag = ?", userID, tag).
		First(&score).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		score = entities.TagScore{
			ID:     uuid.New(),
			UserID: userID,
			Tag:    tag,
			Score:  delta,
		}
		return r.db.WithContext(ctx).Create(&score).Error
	}
	if err != nil {
		return err
	}

	score.Score += delta
	return r.db.WithContext(ctx).Save(&score).Error
}

func (r *userRepository) GetTagScores(ctx context.Context, userID string) (map[string]int, error) {
	var scores []entities.TagScore
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&scores).Error; err != nil {
		return nil, err
	}

	mapped := make(map[string]int, len(scores))
	for _, score := range scores {
		mapped[score.Tag] = score.Score
	}
	return mapped, nil
}
