package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jhc-clinics/hms-api/internal/httperr"
)

// Codes that refer to a missing entity rather than a broken rule.
var notFoundCodes = map[string]bool{
	"doctor_not_found":  true,
	"patient_not_found": true,
}

func respondError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		if notFoundCodes[be.Code] {
			httperr.NotFound(c, be.Code, be.Message)
			return
		}
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}

	httperr.Internal(c, "internal_error", err.Error())
}
