package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "atelie_arq/internal/adapter/http/dto/response"
	"atelie_arq/internal/usecase"
	"atelie_arq/pkg"

	"github.com/gin-gonic/gin"
)

// EntradaPaymentHandler handles HTTP requests for entrada payments.

type EntradaPaymentHandler struct {
	usecase usecase.IEntradaPaymentUseCase
}

func NewEntradaPaymentHandler(uc usecase.IEntradaPaymentUseCase) *EntradaPaymentHandler {
	return &EntradaPaymentHandler{usecase: uc}
}

// CreateEntradaPayment charges the entrada stage of a stored proposal.
//
// @Summary      Collect the entrada installment of a proposal
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Param        request body request.EntradaPaymentCreateRequest false "Mercado Pago payload envelope"
// @Success      200 {object} response.EntradaPaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /proposals/{id}/entrada-payment [post]
func (h *EntradaPaymentHandler) CreateEntradaPayment(c *gin.Context) {
	proposalID := c.Param("id")
	log.Printf("[payment][handler] entrada start proposal_id=%s", proposalID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload proposal_id=%s err=%v", proposalID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEntradaPayment(c.Request.Context(), proposalID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] entrada failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapEntradaPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] entrada success proposal_id=%s payment_id=%s status=%s", proposalID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromEntradaPayment(created))
}

// GetEntradaPayment returns the latest entrada payment for a proposal.
//
// @Summary      Get the entrada payment of a proposal
// @Tags         payments
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.EntradaPaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /proposals/{id}/entrada-payment [get]
func (h *EntradaPaymentHandler) GetEntradaPayment(c *gin.Context) {
	proposalID := c.Param("id")

	payments, err := h.usecase.ListByProposalID(c.Request.Context(), proposalID)
	if err != nil {
		appErr := mapEntradaPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromEntradaPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapEntradaPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentProposalID),
		errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected the credentials", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalSemEntrada):
		return pkg.NewDomainErrorSimple("PROPOSAL_WITHOUT_ENTRADA", "Proposal has no entrada stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrEntradaPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
