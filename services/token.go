package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"hotelbooking/errors"
)

type StaffInfo struct {
	StaffID     uint     `json:"staffid"`
	Permissions []string `json:"permissions"`
}

type Claims struct {
	StaffInfo StaffInfo `json:"staffinfo"`
	jwt.StandardClaims
}

// TokenService ký và kiểm tra access token HS256
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, clock: time.Now}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) GenerateToken(info StaffInfo) (string, error) {
	now := s.clock()
	claims := &Claims{
		StaffInfo: info,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken kiểm tra chữ ký, hạn dùng và trả về thông tin nhân viên
func (s *TokenService) ParseToken(tokenString string) (StaffInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return StaffInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid {
		return StaffInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}
	if claims.StaffInfo.StaffID == 0 {
		return StaffInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin nhân viên trong token", nil)
	}
	return claims.StaffInfo, nil
}
