package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/pkg/resp"
	"github.com/vaishnavisherala/RestaurantSystem/services"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=6"`
}

type TokenRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// POST /api/signup/
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.svc.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, services.SerializeUser(user))
}

// POST /api/token/ — accepts username or email
func (a *AuthController) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pair, _, err := a.svc.Login(req.Username, req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, pair)
}

// POST /api/token/refresh/
func (a *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	access, err := a.svc.Refresh(req.Refresh)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}
