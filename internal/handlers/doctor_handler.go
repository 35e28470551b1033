package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/httpresp"
	"github.com/jhc-clinics/hms-api/internal/middleware"
	"github.com/jhc-clinics/hms-api/internal/models"
	"github.com/jhc-clinics/hms-api/internal/usecase/account"
	"github.com/jhc-clinics/hms-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	register *account.RegisterDoctor
	rotate   *account.RotateSystemPassword
	login    *account.LoginDoctor
}

func NewDoctorHandler(
	register *account.RegisterDoctor,
	rotate *account.RotateSystemPassword,
	login *account.LoginDoctor,
) *DoctorHandler {
	return &DoctorHandler{
		register: register,
		rotate:   rotate,
		login:    login,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDoctorRequest struct {
	FirstName    string `json:"first_name" binding:"required,min=3"`
	LastName     string `json:"last_name" binding:"required,min=3"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	DOB          string `json:"DOB" binding:"required"`
	IsConsultant *bool  `json:"is_consultant" binding:"required"`
	Unit         string `json:"unit" binding:"required"`
	ImgURL       string `json:"img_url"`
}

type RotatePasswordRequest struct {
	ID              uint   `json:"id" binding:"required"`
	OldPassword     string `json:"old_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *DoctorHandler) Register(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsValidPhone(req.Phone) {
		httperr.Unprocessable(c, "invalid_phone", "phone must be between 11 and 15 characters")
		return
	}

	if !validators.IsValidUnit(req.Unit) {
		httperr.Unprocessable(c, "invalid_unit",
			"Unit must be one of Pediatrics, Gynecology, General Medicine, or Surgery")
		return
	}

	dob, err := validators.ParseDOB(req.DOB)
	if err != nil || !validators.IsValidDOB(dob) {
		httperr.Unprocessable(c, "invalid_dob",
			"Date of birth must be a valid date within the last 100 years")
		return
	}

	doctor, err := h.register.Execute(c.Request.Context(), account.RegisterDoctorInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DOB:          dob,
		IsConsultant: *req.IsConsultant,
		Unit:         req.Unit,
		ImgURL:       req.ImgURL,
		AdminID:      adminID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, "Doctor profile created successfully...", doctorSummary(doctor))
}

func (h *DoctorHandler) RotateSystemPassword(c *gin.Context) {
	var req RotatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	err := h.rotate.Execute(c.Request.Context(), account.RotateSystemPasswordInput{
		DoctorID:    req.ID,
		OldPassword: req.OldPassword,
		NewPassword: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.WithExtras(c, 200, "account verified successfully", nil,
		gin.H{"redirect": true})
}

func (h *DoctorHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	doctor, signed, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.WithExtras(c, 200,
		fmt.Sprintf("Login successful (welcome %s %s)", doctor.FirstName, doctor.LastName),
		doctorSummary(doctor),
		gin.H{"access_token": signed},
	)
}

// ======================================================
// SUMMARIES
// ======================================================

func doctorSummary(d *models.Doctor) gin.H {
	return gin.H{
		"id":            d.ID,
		"first_name":    d.FirstName,
		"last_name":     d.LastName,
		"email":         d.Email,
		"phone":         d.Phone,
		"is_consultant": d.IsConsultant,
		"DOB":           d.DOB,
		"unit":          d.Unit,
		"img_url":       d.ImgURL,
		"is_verified":   d.IsVerified,
	}
}
