package controllers

import (
	"github.com/gin-gonic/gin"

	"hotelbooking/dto"
	"hotelbooking/response"
	"hotelbooking/services"
)

type AuthController struct {
	Auth   *services.AuthService
	Tokens *services.TokenService
}

func NewAuthController(auth *services.AuthService, tokens *services.TokenService) AuthController {
	return AuthController{Auth: auth, Tokens: tokens}
}

// Login godoc
// @Summary  Đăng nhập nhân viên
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials  body  dto.LoginInput  true  "Email và mật khẩu"
// @Success  200  {object}  response.Response
// @Failure  401  {object}  response.Response
// @Router   /api/v1/auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := a.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	a.setTokenCookie(c, result.AccessToken)

	staff := result.Staff
	response.Success(c, gin.H{
		"staff_info": dto.StaffLoginResponse{
			StaffID:     staff.ID,
			StaffName:   staff.Name,
			StaffEmail:  staff.Email,
			Permissions: staff.Permissions,
			CreatedAt:   staff.CreatedAt,
			UpdatedAt:   staff.UpdatedAt,
		},
		"accessToken": result.AccessToken,
	})
}

func (a AuthController) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, true)
	response.Success(c, nil)
}

func (a AuthController) setTokenCookie(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		int(a.Tokens.TTL().Seconds()),
		"/",
		"",
		true,
		true,
	)
}
