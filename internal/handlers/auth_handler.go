package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SmartLocalApps/service-finder/internal/dto"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/httpresp"
	ucIdentity "github.com/SmartLocalApps/service-finder/internal/usecase/identity"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register       *ucIdentity.Register
	login          *ucIdentity.Login
	checkDuplicate *ucIdentity.CheckDuplicate
}

func NewAuthHandler(
	register *ucIdentity.Register,
	login *ucIdentity.Login,
	checkDuplicate *ucIdentity.CheckDuplicate,
) *AuthHandler {
	return &AuthHandler{
		register:       register,
		login:          login,
		checkDuplicate: checkDuplicate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Role     string `json:"role" binding:"required"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucIdentity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if httperr.IsBusiness(err, "user_exists") {
			httperr.Conflict(c, "User already exists with this phone or email.")
			return
		}
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.Success(c, gin.H{
		"user": dto.NewAuthUserDTO(user, ""),
	})
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), ucIdentity.LoginInput{
		Role:     req.Role,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_admin_credentials"):
			httperr.Unauthorized(c, "Invalid admin credentials")
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "User not found. Please register.")
		default:
			httperr.Internal(c, err.Error())
		}
		return
	}

	httpresp.Success(c, gin.H{
		"token": result.Token,
		"user":  dto.NewAuthUserDTO(result.User, result.WorkerID),
	})
}

// ======================================================
// CHECK DUPLICATE
// ======================================================

func (h *AuthHandler) CheckDuplicate(c *gin.Context) {
	exists, err := h.checkDuplicate.Execute(c.Request.Context(), ucIdentity.CheckDuplicateInput{
		Phone:   c.Query("phone"),
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Service: c.Query("service"),
	})
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}
