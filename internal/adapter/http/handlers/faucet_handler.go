package handlers

import (
	"errors"
	"log"
	"net/http"

	"bucketvault/internal/usecase"
	"bucketvault/pkg"

	"github.com/gin-gonic/gin"
)

// FaucetHandler exposes the test-token faucet: remaining cooldown and claims.

type FaucetHandler struct {
	usecase usecase.IFaucetUseCase
}

func NewFaucetHandler(uc usecase.IFaucetUseCase) *FaucetHandler {
	return &FaucetHandler{usecase: uc}
}

func (h *FaucetHandler) GetStatus(c *gin.Context) {
	wallet := c.Param("wallet")

	status, err := h.usecase.Status(c.Request.Context(), wallet)
	if err != nil {
		appErr := mapFaucetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *FaucetHandler) Claim(c *gin.Context) {
	wallet := c.Param("wallet")
	log.Printf("[faucet][handler] claim start wallet=%s", wallet)

	txHash, err := h.usecase.Claim(c.Request.Context(), wallet)
	if err != nil {
		log.Printf("[faucet][handler] claim failed wallet=%s err=%v", wallet, err)
		appErr := mapFaucetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"tx_hash": txHash})
}

func mapFaucetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWallet):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFaucetCooldown):
		return pkg.NewDomainErrorSimple("FAUCET_COOLDOWN", "Faucet cooldown has not elapsed", http.StatusTooManyRequests)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
}
