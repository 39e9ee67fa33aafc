package currency

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// Handler handles HTTP requests for currency lookups.
type Handler struct {
	service CurrencyService
}

// NewHandler creates a new currency handler.
func NewHandler(service CurrencyService) *Handler {
	return &Handler{service: service}
}

// List returns every supported currency (GET /api/v1/currencies).
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.All())
}

// convertResponse is the payload returned by Convert.
type convertResponse struct {
	Amount    float64 `json:"amount"`
	From      Code    `json:"from"`
	To        Code    `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

// Convert converts an amount between currencies
// (GET /api/v1/currencies/convert?amount=&from=&to=).
func (h *Handler) Convert(c echo.Context) error {
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return apperror.NewBadRequest("amount must be a number")
	}
	from := Code(c.QueryParam("from"))
	to := Code(c.QueryParam("to"))

	result, err := h.service.Convert(amount, from, to)
	if err != nil {
		return err
	}
	formatted, err := h.service.Format(result, to)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, convertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Result:    result,
		Formatted: formatted,
	})
}
