package handlers

import (
	"fmt"

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

type PatientHandler struct {
	register *account.RegisterPatient
	verify   *account.VerifyAccount
	forgot   *account.ForgotPassword
	reset    *account.ResetPassword
	login    *account.LoginPatient
}

func NewPatientHandler(
	register *account.RegisterPatient,
	verify *account.VerifyAccount,
	forgot *account.ForgotPassword,
	reset *account.ResetPassword,
	login *account.LoginPatient,
) *PatientHandler {
	return &PatientHandler{
		register: register,
		verify:   verify,
		forgot:   forgot,
		reset:    reset,
		login:    login,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePatientRequest struct {
	FirstName       string `json:"first_name" binding:"required,min=3"`
	LastName        string `json:"last_name" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	DOB             string `json:"DOB" binding:"required"`
	BloodGroup      string `json:"blood_group" binding:"required"`
	Genotype        string `json:"genotype" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	ImgURL          string `json:"img_url"`
}

type VerifyAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required,len=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Token           string `json:"token" binding:"required,len=6"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PatientHandler) Register(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsValidPhone(req.Phone) {
		httperr.Unprocessable(c, "invalid_phone", "phone must be between 11 and 15 characters")
		return
	}

	if !validators.IsValidBloodGroup(req.BloodGroup) {
		httperr.Unprocessable(c, "invalid_blood_group", "blood group is not recognised")
		return
	}

	if !validators.IsValidGenotype(req.Genotype) {
		httperr.Unprocessable(c, "invalid_genotype", "genotype must be one of AA, AS or SS")
		return
	}

	dob, err := validators.ParseDOB(req.DOB)
	if err != nil || !validators.IsValidDOB(dob) {
		httperr.Unprocessable(c, "invalid_dob",
			"Date of birth must be a valid date within the last 100 years")
		return
	}

	patient, err := h.register.Execute(c.Request.Context(), account.RegisterPatientInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		DOB:        dob,
		BloodGroup: req.BloodGroup,
		Genotype:   req.Genotype,
		Password:   req.Password,
		ImgURL:     req.ImgURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, "patient profile created successfully...", patientSummary(patient))
}

func (h *PatientHandler) VerifyAccount(c *gin.Context) {
	var req VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	err := h.verify.Execute(c.Request.Context(), account.VerifyAccountInput{
		Email: req.Email,
		Token: req.Token,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, "account verified successfully", nil)
}

func (h *PatientHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	if err := h.forgot.Execute(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, fmt.Sprintf("verification token has been sent to %s", req.Email), nil)
}

func (h *PatientHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	err := h.reset.Execute(c.Request.Context(), account.ResetPasswordInput{
		Email:    req.Email,
		Token:    req.Token,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, "password reset successfully", nil)
}

func (h *PatientHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	patient, signed, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.WithExtras(c, 200,
		fmt.Sprintf("Login successful (welcome %s %s)", patient.FirstName, patient.LastName),
		patientSummary(patient),
		gin.H{"access_token": signed},
	)
}

// ======================================================
// SUMMARIES
// ======================================================

func patientSummary(p *models.Patient) gin.H {
	return gin.H{
		"id":          p.ID,
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"email":       p.Email,
		"phone":       p.Phone,
		"blood_group": p.BloodGroup,
		"DOB":         p.DOB,
		"genotype":    p.Genotype,
		"is_verified": p.IsVerified,
	}
}
