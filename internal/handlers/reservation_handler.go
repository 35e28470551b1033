package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/httpresp"
	"github.com/jhc-clinics/hms-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	book *reservation.BookReservation
}

func NewReservationHandler(book *reservation.BookReservation) *ReservationHandler {
	return &ReservationHandler{book: book}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Time    string `json:"time" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Patient uint   `json:"patient" binding:"required"`
	Doctor  uint   `json:"doctor" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	res, err := h.book.Execute(c.Request.Context(), reservation.BookReservationInput{
		DoctorID:  req.Doctor,
		PatientID: req.Patient,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c,
		"Reservation created, a mail will be sent to you with full details about the reservation",
		res,
	)
}
