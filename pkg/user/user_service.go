package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/internal/utils/mailing"
	"DTCL-Backend/internal/utils/storage"
	"DTCL-Backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const verificationCodeTTL = 10 * time.Minute

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, userID string) error
		RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.RefreshTokenResponse, error)
		SendVerificationCode(ctx context.Context, req domain.SendVerificationCodeRequest) error
		VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error
		ChangePassword(ctx context.Context, req domain.ChangePasswordRequest, userID string) error
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, avatar *multipart.FileHeader, userID string) (domain.ProfileResponse, error)
		DeleteAccount(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return domain.RegisterResponse{}, domain.ErrRegisterMissingFields
	}
	if !emailRegex.MatchString(req.Email) {
		return domain.RegisterResponse{}, domain.ErrRegisterBadEmail
	}
	if len(req.Password) < 6 || len(req.Password) > 20 {
		return domain.RegisterResponse{}, domain.ErrRegisterBadPassword
	}
	if len(req.Name) < 3 || len(req.Name) > 30 {
		return domain.RegisterResponse{}, domain.ErrRegisterBadName
	}

	// Emails are stored case-folded so uniqueness holds across variants.
	email := strings.ToLower(req.Email)

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	code := generateVerificationCode()
	expiry := time.Now().Add(verificationCodeTTL)

	newUser := &entities.User{
		Email:              email,
		Password:           string(hashed),
		Name:               req.Name,
		Language:           req.Language,
		Timezone:           req.Timezone,
		DeviceID:           req.DeviceID,
		VerificationCode:   code,
		VerificationExpiry: &expiry,
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.RegisterResponse{}, err
	}

	body := mailing.VerificationEmailBody(newUser.Name, code, int(verificationCodeTTL.Minutes()))
	if err := mailing.SendMail(newUser.Email, "Xác thực tài khoản", body); err != nil {
		log.Printf("failed to send verification email to %s: %v", newUser.Email, err)
	}

	return domain.RegisterResponse{
		ID:    newUser.ID.String(),
		Email: newUser.Email,
		Name:  newUser.Name,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrLoginMissingFields
	}
	if !emailRegex.MatchString(req.Email) {
		return domain.LoginResponse{}, domain.ErrLoginBadEmail
	}

	u, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrEmailNotFound
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	token := s.jwtService.GenerateAccessToken(u.ID.String(), u.Role)
	refreshToken, err := s.jwtService.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return domain.LoginResponse{}, err
	}

	u.RefreshToken = refreshToken
	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.LoginResponse{}, err
	}

	var groupID *string
	if u.GroupID != nil {
		id := u.GroupID.String()
		groupID = &id
	}

	return domain.LoginResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Username:     u.Username,
		Avatar:       u.Avatar,
		Role:         u.Role,
		GroupID:      groupID,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrTokenUserNotFound
	}
	u.RefreshToken = ""
	return s.userRepository.UpdateUser(ctx, u)
}

func (s *userService) RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.RefreshTokenResponse, error) {
	if req.RefreshToken == "" {
		return domain.RefreshTokenResponse{}, domain.ErrRefreshMissing
	}

	userID, err := s.jwtService.GetUserIDByRefreshToken(req.RefreshToken)
	if err != nil {
		return domain.RefreshTokenResponse{}, err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.RefreshTokenResponse{}, domain.ErrRefreshMismatch
	}
	if u.RefreshToken == "" || u.RefreshToken != req.RefreshToken {
		return domain.RefreshTokenResponse{}, domain.ErrRefreshMismatch
	}

	token := s.jwtService.GenerateAccessToken(u.ID.String(), u.Role)
	refreshToken, err := s.jwtService.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return domain.RefreshTokenResponse{}, err
	}

	// Rotate the stored token so a leaked old token cannot be replayed.
	u.RefreshToken = refreshToken
	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.RefreshTokenResponse{}, err
	}

	return domain.RefreshTokenResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) SendVerificationCode(ctx context.Context, req domain.SendVerificationCodeRequest) error {
	if req.Email == "" {
		return domain.ErrSendCodeMissingEmail
	}

	u, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSendCodeNoAccount
		}
		return err
	}

	code := generateVerificationCode()
	expiry := time.Now().Add(verificationCodeTTL)
	u.VerificationCode = code
	u.VerificationExpiry = &expiry
	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return err
	}

	// Delivery failures stay server-side; the code is already stored and
	// the client can request a resend.
	body := mailing.VerificationEmailBody(u.Name, code, int(verificationCodeTTL.Minutes()))
	if err := mailing.SendMail(u.Email, "Xác thực tài khoản", body); err != nil {
		log.Printf("failed to send verification email to %s: %v", u.Email, err)
	}
	return nil
}

func (s *userService) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	if req.Code == "" {
		return domain.ErrVerifyMissingCode
	}

	u, err := s.userRepository.GetUserByVerificationCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVerifyBadCode
		}
		return err
	}
	if u.VerificationExpiry == nil || time.Now().After(*u.VerificationExpiry) {
		return domain.ErrVerifyBadCode
	}

	u.IsVerified = true
	u.VerificationCode = ""
	u.VerificationExpiry = nil
	return s.userRepository.UpdateUser(ctx, u)
}

func (s *userService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest, userID string) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return domain.ErrChangePasswordMissing
	}
	if len(req.NewPassword) < 6 || len(req.NewPassword) > 20 {
		return domain.ErrChangePasswordBadNew
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrTokenUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)); err != nil {
		return domain.ErrChangePasswordNoMatch
	}
	if req.OldPassword == req.NewPassword {
		return domain.ErrChangePasswordSame
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, u)
}

func toProfileResponse(u *entities.User) domain.ProfileResponse {
	var groupID *string
	if u.GroupID != nil {
		id := u.GroupID.String()
		groupID = &id
	}
	var dob *string
	if u.DateOfBirth != nil {
		d := u.DateOfBirth.Format("2006-01-02")
		dob = &d
	}
	return domain.ProfileResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Username:    u.Username,
		Avatar:      u.Avatar,
		Role:        u.Role,
		Gender:      u.Gender,
		DateOfBirth: dob,
		Language:    u.Language,
		Timezone:    u.Timezone,
		IsVerified:  u.IsVerified,
		GroupID:     groupID,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrTokenUserNotFound
	}
	return toProfileResponse(u), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, avatar *multipart.FileHeader, userID string) (domain.ProfileResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrTokenUserNotFound
	}

	if req.Name != "" {
		if len(req.Name) < 3 || len(req.Name) > 30 {
			return domain.ProfileResponse{}, domain.ErrUpdateBadName
		}
		u.Name = req.Name
	}
	if req.Gender != "" {
		if req.Gender != "female" && req.Gender != "male" && req.Gender != "other" {
			return domain.ProfileResponse{}, domain.ErrUpdateBadGender
		}
		u.Gender = req.Gender
	}
	if req.Language != "" {
		if req.Language != "vi" && req.Language != "en" {
			return domain.ProfileResponse{}, domain.ErrUpdateBadLanguage
		}
		u.Language = req.Language
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil || dob.After(time.Now()) {
			return domain.ProfileResponse{}, domain.ErrUpdateBadBirthday
		}
		u.DateOfBirth = &dob
	}
	if req.Username != "" {
		if len(req.Username) < 3 || len(req.Username) > 15 {
			return domain.ProfileResponse{}, domain.ErrUpdateBadUsername
		}
		if u.Username == nil || *u.Username != req.Username {
			if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
				return domain.ProfileResponse{}, domain.ErrUsernameTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ProfileResponse{}, err
			}
			username := req.Username
			u.Username = &username
		}
	}

	if avatar != nil {
		var objectKey string
		var uploadErr error
		if u.Avatar != "" {
			existingKey := s.s3.GetObjectKeyFromLink(u.Avatar)
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, avatar, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(u.ID.String(), avatar, "avatars", storage.AllowImage...)
		}
		if uploadErr != nil {
			return domain.ProfileResponse{}, uploadErr
		}
		u.Avatar = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(u), nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrTokenUserNotFound
	}

	if u.Avatar != "" {
		objectKey := s.s3.GetObjectKeyFromLink(u.Avatar)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.userRepository.DeleteUserCascade(ctx, userID)
}
