package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bucketvault/internal/adapter/http/dto/request"
	response "bucketvault/internal/adapter/http/dto/response"
	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase"
	"bucketvault/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// SessionHandler handles HTTP requests for the payment session lifecycle.

type SessionHandler struct {
	usecase usecase.IPaymentSessionUseCase
}

func NewSessionHandler(uc usecase.IPaymentSessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// CreateCheckout opens a pending session for a gateway checkout.
func (h *SessionHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	log.Printf("[session][handler] create start wallet=%s reference=%s", payload.WalletAddress, payload.Reference)
	s, err := h.usecase.CreateCheckout(
		c.Request.Context(),
		payload.WalletAddress,
		entities.TokenSymbol(payload.TokenSymbol),
		payload.FiatAmount,
		payload.Reference,
		payload.ResolveTTL(),
	)
	if err != nil {
		log.Printf("[session][handler] create failed reference=%s err=%v", payload.Reference, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[session][handler] create success session_id=%s reference=%s", s.ID, s.Reference)

	c.JSON(http.StatusCreated, response.FromPaymentSession(s))
}

// GetActiveByWallet returns the wallet's active session, applying lazy expiry.
func (h *SessionHandler) GetActiveByWallet(c *gin.Context) {
	wallet := c.Param("wallet")

	s, err := h.usecase.ActiveSession(c.Request.Context(), wallet)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSession(s))
}

// VerifyByReference polls the gateway outcome for the reference and applies
// the at-most-once resolution.
func (h *SessionHandler) VerifyByReference(c *gin.Context) {
	reference := c.Param("reference")
	log.Printf("[session][handler] verify start reference=%s", reference)

	s, err := h.usecase.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		log.Printf("[session][handler] verify failed reference=%s err=%v", reference, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[session][handler] verify done reference=%s status=%s", reference, s.Status)

	c.JSON(http.StatusOK, response.FromPaymentSession(s))
}

// ClearByID abandons a session unconditionally, whatever its status, so the
// wallet can open a fresh checkout.
func (h *SessionHandler) ClearByID(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[session][handler] clear start session_id=%s", id)

	if err := h.usecase.Clear(c.Request.Context(), id); err != nil {
		log.Printf("[session][handler] clear failed session_id=%s err=%v", id, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[session][handler] clear done session_id=%s", id)

	c.Status(http.StatusNoContent)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWallet),
		errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrInvalidFiatAmount),
		errors.Is(err, usecase.ErrInvalidReference),
		errors.Is(err, usecase.ErrInvalidTTL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateReference):
		return pkg.NewDomainErrorSimple("DUPLICATE_REFERENCE", "Reference already has a session", http.StatusConflict)
	case errors.Is(err, usecase.ErrActiveSessionExists):
		return pkg.NewDomainErrorSimple("ACTIVE_SESSION_EXISTS", "Wallet already has an active session", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Session expired", http.StatusGone)
	case errors.Is(err, usecase.ErrAlreadyResolved):
		return pkg.NewDomainErrorSimple("ALREADY_RESOLVED", "Session already resolved", http.StatusConflict)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
}
