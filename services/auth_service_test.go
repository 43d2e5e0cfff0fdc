package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

type fakeStaffStore map[string]models.Staff

func (f fakeStaffStore) GetStaffByEmail(_ context.Context, email string) (models.Staff, error) {
	staff, ok := f[email]
	if !ok {
		return models.Staff{}, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *TokenService) {
	t.Helper()
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	store := fakeStaffStore{
		"lan@hotel.vn":    {ID: 7, Email: "lan@hotel.vn", Password: hash, Active: true, Permissions: pq.StringArray{"bookings:read", "bookings:write"}},
		"locked@hotel.vn": {ID: 8, Email: "locked@hotel.vn", Password: hash, Active: false},
	}
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(store, tokens), tokens
}

func TestAuthService_Login(t *testing.T) {
	auth, tokens := newAuthFixture(t)

	result, err := auth.Login(context.Background(), "  LAN@hotel.vn ", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	info, err := tokens.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if info.StaffID != 7 || len(info.Permissions) != 2 {
		t.Errorf("claims = %+v", info)
	}
}

func TestAuthService_LoginRejects(t *testing.T) {
	auth, _ := newAuthFixture(t)

	cases := []struct {
		name, email, password string
		want                  error
	}{
		{"wrong password", "lan@hotel.vn", "nope", apperrors.ErrInvalidPassword},
		{"unknown email", "who@hotel.vn", "s3cret", apperrors.ErrInvalidPassword},
		{"inactive", "locked@hotel.vn", "s3cret", apperrors.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	token, err := NewTokenService("other-secret", time.Hour).GenerateToken(StaffInfo{StaffID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokenService("test-secret", time.Hour).ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Minute)
	tokens.clock = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := tokens.GenerateToken(StaffInfo{StaffID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tokens.ParseToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}
