package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodInteraction is one piece of recorded feedback on a planned food.
type FoodInteraction struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	FoodID string    `json:"food_id"`
	Action string    `json:"action"` // accepted, rejected, liked, disliked

	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

// TagScore is one learned tag weight for a user. The aggregated rows form
// the tag-preference mapping handed to the planning engine.
type TagScore struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index:idx_tag_scores_user_tag,unique" json:"user_id"`
	Tag    string    `gorm:"index:idx_tag_scores_user_tag,unique" json:"tag"`
	Score  int       `json:"score"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
