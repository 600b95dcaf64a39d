package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"showbench/internal/db"
)

type recordPaymentRequest struct {
	AmountCents int    `json:"amountCents" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}

// handleRecordPayment books a completed payment against a registration and
// moves the registration to paid. Online payment flows live with the
// provider; this records the outcome.
func (s *Server) handleRecordPayment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid registration id")
		return
	}
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payment payload")
		return
	}
	conn := tenantDB(c)
	var registration db.Registration
	if err := conn.First(&registration, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	payment := db.Payment{
		RegistrationID: registration.ID,
		Reference:      uuid.NewString(),
		AmountCents:    req.AmountCents,
		Currency:       currency,
		Status:         db.PaymentCompleted,
	}
	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&registration).Update("status", db.RegistrationPaid).Error
	})
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": payment.ID, "reference": payment.Reference})
}
