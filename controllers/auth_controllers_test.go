package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/services"
)

type staffByEmail map[string]models.Staff

func (s staffByEmail) GetStaffByEmail(_ context.Context, email string) (models.Staff, error) {
	staff, ok := s[email]
	if !ok {
		return models.Staff{}, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

func TestLogin(t *testing.T) {
	hash, err := services.HashPassword("matkhau")
	if err != nil {
		t.Fatal(err)
	}
	tokens := services.NewTokenService("secret", time.Hour)
	auth := services.NewAuthService(staffByEmail{
		"mai@hotel.vn": {ID: 1, Name: "Mai", Email: "mai@hotel.vn", Password: hash, Active: true},
	}, tokens)
	ac := NewAuthController(auth, tokens)

	r := gin.New()
	r.POST("/login", ac.Login)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"email":"mai@hotel.vn","password":"matkhau"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "access_token=") {
		t.Error("access_token cookie not set")
	}

	if w = post(`{"email":"mai@hotel.vn","password":"sai"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password = %d, want 401", w.Code)
	}
	if w = post(`{"email":"not-an-email","password":"x"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad input = %d, want 400", w.Code)
	}
}
