package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api/metrics"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
)

// RegistrantHandler serves the protected admin operations over registrant
// records. Every method derives visibility from the identity the Session
// middleware attached; no handler re-implements authentication.
type RegistrantHandler struct {
	service ports.RegistrantService
}

func NewRegistrantHandler(service ports.RegistrantService) *RegistrantHandler {
	return &RegistrantHandler{service: service}
}

type paymentImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type updatePaymentRequest struct {
	ID                string `json:"_id" validate:"required"`
	Paid              bool   `json:"paid"`
	FullName          string `json:"fullName" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	TransactionNumber string `json:"transactionNumber"`
}

type updatePaymentResponse struct {
	Msg     string `json:"msg"`
	EmailID string `json:"emailId"`
}

// List handles GET /getData — the registrants visible to the caller.
//
// @Summary      List registrants in the caller's scope
// @Tags         registrants
// @Produce      json
// @Success      200  {array}   domain.Registrant
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /getData [get]
func (h *RegistrantHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	registrants, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Error fetching data", err))
	}

	return c.JSON(http.StatusOK, registrants)
}

// PaymentImage handles GET /getPaymentImage/:id — the stored screenshot URL.
//
// @Summary      Get the payment screenshot URL for a registrant
// @Tags         registrants
// @Produce      json
// @Param        id   path      string  true  "Registrant id"
// @Success      200  {object}  paymentImageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /getPaymentImage/{id} [get]
func (h *RegistrantHandler) PaymentImage(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	url, err := h.service.PaymentImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRegistrantNotFound) || errors.Is(err, domain.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"msg": "Image not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "Server error"})
	}

	return c.JSON(http.StatusOK, paymentImageResponse{ImageURL: url})
}

// UpdatePayment handles PUT /update — persists the payment verdict and
// notifies the registrant by email.
//
// @Summary      Update a registrant's payment status
// @Tags         registrants
// @Accept       json
// @Produce      json
// @Param        body  body      updatePaymentRequest  true  "Payment verdict"
// @Success      200   {object}  updatePaymentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /update [put]
func (h *RegistrantHandler) UpdatePayment(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Error updating record"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Error updating record", err))
	}

	emailID, err := h.service.UpdatePayment(c.Request().Context(), ports.UpdatePaymentInput{
		ID:                req.ID,
		Paid:              req.Paid,
		FullName:          req.FullName,
		Email:             req.Email,
		TransactionNumber: req.TransactionNumber,
	})
	if err != nil {
		metrics.PaymentUpdatesTotal.WithLabelValues("error").Inc()
		if errors.Is(err, domain.ErrMailDelivery) {
			// The flag update already committed; only the notification failed.
			metrics.StatusEmailsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, errorBody("Email sending failed", err))
		}
		return c.JSON(http.StatusBadRequest, errorBody("Error updating record", err))
	}

	metrics.PaymentUpdatesTotal.WithLabelValues(verdictLabel(req.Paid)).Inc()
	metrics.StatusEmailsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, updatePaymentResponse{Msg: "Success", EmailID: emailID})
}

// Download handles GET /downloadData — CSV export of the caller's scope.
//
// @Summary      Export registrants in the caller's scope as CSV
// @Tags         registrants
// @Produce      text/csv
// @Success      200  {string}  string  "CSV file"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /downloadData [get]
func (h *RegistrantHandler) Download(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	export, err := h.service.Export(c.Request().Context(), identity)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Error downloading data", err))
	}

	metrics.ExportsTotal.WithLabelValues(identity.Department).Inc()
	metrics.ExportDuration.Observe(time.Since(start).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", export.Content)
}

func verdictLabel(paid bool) string {
	if paid {
		return "verified"
	}
	return "rejected"
}

// errorBody builds the {"msg", "error"} envelope. The underlying message
// is surfaced deliberately: callers are trusted admins.
func errorBody(msg string, err error) map[string]string {
	return map[string]string{"msg": msg, "error": err.Error()}
}
