package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/config"
	"github.com/jhc-clinics/hms-api/internal/handlers"
	infraRepo "github.com/jhc-clinics/hms-api/internal/infra/repository"
	"github.com/jhc-clinics/hms-api/internal/mail"
	"github.com/jhc-clinics/hms-api/internal/middleware"
	"github.com/jhc-clinics/hms-api/internal/token"
	ucAccount "github.com/jhc-clinics/hms-api/internal/usecase/account"
	ucReservation "github.com/jhc-clinics/hms-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier mail.Notifier) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailDispatcher := mail.NewDispatcher(notifier)

	tokens := token.NewIssuer(cfg.JWTSecret)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	registerHospitalUC := ucAccount.NewRegisterHospital(directoryRepo, auditDispatcher)
	loginHospitalUC := ucAccount.NewLoginHospital(directoryRepo, tokens)

	registerDoctorUC := ucAccount.NewRegisterDoctor(
		directoryRepo,
		cfg,
		mailDispatcher,
		auditDispatcher,
	)
	rotatePasswordUC := ucAccount.NewRotateSystemPassword(directoryRepo, auditDispatcher)
	loginDoctorUC := ucAccount.NewLoginDoctor(directoryRepo, tokens)

	registerPatientUC := ucAccount.NewRegisterPatient(
		directoryRepo,
		mailDispatcher,
		auditDispatcher,
	)
	verifyAccountUC := ucAccount.NewVerifyAccount(directoryRepo)
	forgotPasswordUC := ucAccount.NewForgotPassword(directoryRepo, mailDispatcher)
	resetPasswordUC := ucAccount.NewResetPassword(directoryRepo, mailDispatcher)
	loginPatientUC := ucAccount.NewLoginPatient(directoryRepo, tokens)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	bookReservationUC := ucReservation.NewBookReservation(
		reservationRepo,
		cfg,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	hospitalHandler := handlers.NewHospitalHandler(registerHospitalUC, loginHospitalUC)
	doctorHandler := handlers.NewDoctorHandler(registerDoctorUC, rotatePasswordUC, loginDoctorUC)
	patientHandler := handlers.NewPatientHandler(
		registerPatientUC,
		verifyAccountUC,
		forgotPasswordUC,
		resetPasswordUC,
		loginPatientUC,
	)
	reservationHandler := handlers.NewReservationHandler(bookReservationUC)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api/v1/JHC-hms")

	hospital := api.Group("/hospital")
	{
		hospital.POST("/create", hospitalHandler.Register)
		hospital.POST("/login", hospitalHandler.Login)
	}

	doctor := api.Group("/doctor")
	{
		doctor.POST("/create", middleware.AdminOnly(db, tokens), doctorHandler.Register)
		doctor.PATCH("/reset-sys-generated-password", doctorHandler.RotateSystemPassword)
		doctor.POST("/login", doctorHandler.Login)
	}

	patient := api.Group("/patient")
	{
		patient.POST("/create", patientHandler.Register)
		patient.POST("/verify-account", patientHandler.VerifyAccount)
		patient.POST("/forgot-password", patientHandler.ForgotPassword)
		patient.POST("/reset-password", patientHandler.ResetPassword)
		patient.POST("/login", patientHandler.Login)
	}

	reservation := api.Group("/reservation")
	{
		reservation.POST("/create", reservationHandler.Create)
	}
}
