package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	// Biometric profile used by the needs calculator. Zero values mean
	// the user has not completed their profile yet.
	Age      int     `json:"age"`
	Gender   string  `json:"gender"` // "male", "female"
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	Activity string  `json:"activity"` // sedentary, light, moderate, active, very_active
	Goal     string  `json:"goal"`     // weight_loss, maintenance, muscle_gain
	Diet     string  `json:"diet"`     // veg, vegan, non-veg

	Allergies []string `gorm:"serializer:json" json:"allergies"`
	Dislikes  []string `gorm:"serializer:json" json:"dislikes"`

	// Password-reset OTP, valid until ResetOTPExpire.
	ResetOTP       string     `json:"-"`
	ResetOTPExpire *time.Time `json:"-"`

	Timestamp
}
