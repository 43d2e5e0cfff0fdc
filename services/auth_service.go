package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelbooking/errors"
	"hotelbooking/models"
)

type StaffStore interface {
	GetStaffByEmail(ctx context.Context, email string) (models.Staff, error)
}

type GormStaffStore struct {
	db *gorm.DB
}

func NewGormStaffStore(db *gorm.DB) *GormStaffStore {
	return &GormStaffStore{db: db}
}

func (s *GormStaffStore) GetStaffByEmail(ctx context.Context, email string) (models.Staff, error) {
	var staff models.Staff
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&staff)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return staff, errors.ErrStaffNotFound
	}
	if result.Error != nil {
		return staff, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải nhân viên", result.Error)
	}
	return staff, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

type LoginResult struct {
	Staff       models.Staff `json:"staff"`
	AccessToken string       `json:"accessToken"`
}

type AuthService struct {
	staff  StaffStore
	tokens *TokenService
}

func NewAuthService(staff StaffStore, tokens *TokenService) *AuthService {
	return &AuthService{staff: staff, tokens: tokens}
}

// Login kiểm tra email/mật khẩu và cấp access token.
// Email sai và mật khẩu sai trả về cùng một lỗi.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	invalid := errors.NewAppError(errors.ErrCodeInvalidPassword, "Email hoặc mật khẩu không hợp lệ", errors.ErrInvalidPassword)

	staff, err := s.staff.GetStaffByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if stderrors.Is(err, errors.ErrStaffNotFound) {
			return LoginResult{}, invalid
		}
		return LoginResult{}, err
	}
	if !staff.Active {
		return LoginResult{}, errors.NewAppError(errors.ErrCodeForbidden, "Tài khoản đã bị khóa", errors.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return LoginResult{}, invalid
	}

	token, err := s.tokens.GenerateToken(StaffInfo{StaffID: staff.ID, Permissions: staff.Permissions})
	if err != nil {
		return LoginResult{}, errors.NewAppError(errors.ErrCodeServiceFailure, "Không thể tạo token", err)
	}
	return LoginResult{Staff: staff, AccessToken: token}, nil
}
