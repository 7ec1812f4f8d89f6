package user

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sanchita-88/meal-planner/domain"
	"github.com/sanchita-88/meal-planner/entities"
	"github.com/sanchita-88/meal-planner/internal/utils/mailing"
	"github.com/sanchita-88/meal-planner/pkg/catalog"
	"github.com/sanchita-88/meal-planner/pkg/jwt"
)

const resetOTPValidity = 10 * time.Minute

// Weight applied to every tag of a food when feedback arrives. Accepted
// feedback is recorded for history but moves no weights.
var feedbackWeights = map[string]int{
	domain.ActionLiked:    2,
	domain.ActionDisliked: -2,
	domain.ActionRejected: -2,
	domain.ActionAccepted: 0,
}

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error)
		RecordFeedback(ctx context.Context, req domain.RecordFeedbackRequest, userID string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		GetLearnedTagScores(ctx context.Context, userID string) (map[string]int, error)
	}

	userService struct {
		userRepository    UserRepository
		catalogRepository catalog.CatalogRepository
		jwtService        jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, catalogRepository catalog.CatalogRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:    userRepository,
		catalogRepository: catalogRepository,
		jwtService:        jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser),
	}, nil
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

	return domain.LoginResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		Profile: toProfileResponse(user),
		Token:   s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser),
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.HeightCM != 0 {
		user.HeightCM = req.HeightCM
	}
	if req.WeightKG != 0 {
		user.WeightKG = req.WeightKG
	}
	if req.Activity != "" {
		user.Activity = req.Activity
	}
	if req.Goal != "" {
		user.Goal = req.Goal
	}
	if req.Diet != "" {
		user.Diet = req.Diet
	}
	if req.Allergies != nil {
		user.Allergies = req.Allergies
	}
	if req.Dislikes != nil {
		user.Dislikes = req.Dislikes
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

// RecordFeedback stores the interaction and moves the user's learned tag
// weights: every tag of the food concerned shifts by +2 for a like and -2
// for a dislike or rejection. These weights are what the planning engine
// later receives as learned preferences.
func (s *userService) RecordFeedback(ctx context.Context, req domain.RecordFeedbackRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	weight, ok := feedbackWeights[req.Action]
	if !ok {
		return domain.ErrInvalidFeedbackAction
	}

	interaction := &entities.FoodInteraction{
		ID:     uuid.New(),
		UserID: userUUID,
		FoodID: req.FoodID,
		Action: req.Action,
	}
	if err := s.userRepository.AddInteraction(ctx, interaction); err != nil {
		return err
	}

	if weight == 0 {
		return nil
	}

	for _, item := range s.catalogRepository.GetFoods() {
		if item.ID != req.FoodID {
			continue
		}
		for _, tag := range item.Tags {
			if err := s.userRepository.AdjustTagScore(ctx, userUUID, tag, weight); err != nil {
				return err
			}
		}
		break
	}
	return nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	otp := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	expire := time.Now().Add(resetOTPValidity)
	user.ResetOTP = otp
	user.ResetOTPExpire = &expire

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset code is: <b>%s</b><br><br>It expires in 10 minutes.", otp)
	if err := mailing.SendMail(user.Email, "Password Reset Code - Smart Meal Planner", body); err != nil {
		// Roll the OTP back so a failed delivery leaves no usable code.
		user.ResetOTP = ""
		user.ResetOTPExpire = nil
		_ = s.userRepository.UpdateUser(ctx, user)
		return err
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOTPInvalidOrExpired
		}
		return err
	}

	if user.ResetOTP == "" || user.ResetOTP != req.OTP ||
		user.ResetOTPExpire == nil || user.ResetOTPExpire.Before(time.Now()) {
		return domain.ErrOTPInvalidOrExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.ResetOTP = ""
	user.ResetOTPExpire = nil
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetLearnedTagScores(ctx context.Context, userID string) (map[string]int, error) {
	return s.userRepository.GetTagScores(ctx, userID)
}

func toProfileResponse(user *entities.User) domain.ProfileResponse {
	return domain.ProfileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Age:       user.Age,
		Gender:    user.Gender,
		HeightCM:  user.HeightCM,
		WeightKG:  user.WeightKG,
		Activity:  user.Activity,
		Goal:      user.Goal,
		Diet:      user.Diet,
		Allergies: user.Allergies,
		Dislikes:  user.Dislikes,
	}
}
