package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessUpdateProfile   = "profile updated successfully"
	MessageSuccessRecordFeedback  = "feedback recorded and preferences updated"
	MessageSuccessForgotPassword  = "password reset code sent"
	MessageSuccessResetPassword   = "password updated successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedRecordFeedback = "failed to record feedback"
	MessageFailedForgotPassword = "failed to send password reset code"
	MessageFailedResetPassword  = "failed to reset password"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrCredentialsInvalid   = errors.New("invalid email or password")
	ErrOTPInvalidOrExpired  = errors.New("invalid or expired OTP")
	ErrInvalidFeedbackAction = errors.New("invalid feedback action")
)

// Feedback actions accepted by the preference learner.
const (
	ActionAccepted = "accepted"
	ActionRejected = "rejected"
	ActionLiked    = "liked"
	ActionDisliked = "disliked"
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Token string `json:"token"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		ID      string          `json:"id"`
		Email   string          `json:"email"`
		Profile ProfileResponse `json:"profile"`
		Token   string          `json:"token"`
	}

	UpdateProfileRequest struct {
		Age       int      `json:"age" validate:"omitempty,min=10,max=120"`
		Gender    string   `json:"gender" validate:"omitempty,oneof=male female"`
		HeightCM  float64  `json:"height" validate:"omitempty,gt=0"`
		WeightKG  float64  `json:"weight" validate:"omitempty,gt=0"`
		Activity  string   `json:"activity" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		Goal      string   `json:"goal" validate:"omitempty,oneof=weight_loss maintenance muscle_gain"`
		Diet      string   `json:"diet" validate:"omitempty,oneof=veg vegan non-veg"`
		Allergies []string `json:"allergies" validate:"omitempty,dive,min=1"`
		Dislikes  []string `json:"dislikes" validate:"omitempty"`
	}

	ProfileResponse struct {
		ID        string   `json:"id"`
		Email     string   `json:"email"`
		Age       int      `json:"age"`
		Gender    string   `json:"gender"`
		HeightCM  float64  `json:"height"`
		WeightKG  float64  `json:"weight"`
		Activity  string   `json:"activity"`
		Goal      string   `json:"goal"`
		Diet      string   `json:"diet"`
		Allergies []string `json:"allergies"`
		Dislikes  []string `json:"dislikes"`
	}

	RecordFeedbackRequest struct {
		FoodID string `json:"food_id" validate:"required"`
		Action string `json:"action" validate:"required,oneof=accepted rejected liked disliked"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Email       string `json:"email" validate:"required,email"`
		OTP         string `json:"otp" validate:"required,len=6"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
)
