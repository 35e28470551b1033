package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/httpresp"
	"github.com/jhc-clinics/hms-api/internal/models"
	"github.com/jhc-clinics/hms-api/internal/usecase/account"
	"github.com/jhc-clinics/hms-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type HospitalHandler struct {
	register *account.RegisterHospital
	login    *account.LoginHospital
}

func NewHospitalHandler(
	register *account.RegisterHospital,
	login *account.LoginHospital,
) *HospitalHandler {
	return &HospitalHandler{
		register: register,
		login:    login,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateHospitalRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Owner    string `json:"owner" binding:"required,min=3"`
	Address  string `json:"address" binding:"required,min=3"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *HospitalHandler) Register(c *gin.Context) {
	var req CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsValidPhone(req.Phone) {
		httperr.Unprocessable(c, "invalid_phone", "phone must be between 11 and 15 characters")
		return
	}

	hospital, err := h.register.Execute(c.Request.Context(), account.RegisterHospitalInput{
		Name:     req.Name,
		Owner:    req.Owner,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, "Hospital created successfully...", hospitalSummary(hospital))
}

func (h *HospitalHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	hospital, signed, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.WithExtras(c, 200, "Login successful (welcome admin)",
		hospitalSummary(hospital),
		gin.H{"access_token": signed},
	)
}

// ======================================================
// SUMMARIES
// ======================================================

func hospitalSummary(h *models.Hospital) gin.H {
	return gin.H{
		"id":       h.ID,
		"name":     h.Name,
		"owner":    h.Owner,
		"email":    h.Email,
		"phone":    h.Phone,
		"username": h.Username,
		"address":  h.Address,
	}
}
