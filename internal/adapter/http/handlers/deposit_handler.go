package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bucketvault/internal/adapter/http/dto/request"
	response "bucketvault/internal/adapter/http/dto/response"
	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase"
	"bucketvault/internal/usecase/interfaces"
	"bucketvault/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles deposit-split execution, manual completion, bucket
// balances, and the allocation weights configuration.

type DepositHandler struct {
	usecase usecase.IDepositSplitUseCase
	config  *usecase.AllocationConfig
}

func NewDepositHandler(uc usecase.IDepositSplitUseCase, config *usecase.AllocationConfig) *DepositHandler {
	return &DepositHandler{usecase: uc, config: config}
}

// Execute consumes a verified session and runs the split, gasless first with
// manual fallback. Safe to retry: repeated calls return the existing attempt.
func (h *DepositHandler) Execute(c *gin.Context) {
	reference := c.Param("reference")
	log.Printf("[deposit][handler] execute start reference=%s", reference)

	attempt, err := h.usecase.Execute(c.Request.Context(), reference)
	if err != nil {
		log.Printf("[deposit][handler] execute failed reference=%s err=%v", reference, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] execute done reference=%s attempt_id=%s status=%s", reference, attempt.ID, attempt.Status)

	c.JSON(http.StatusOK, response.FromDepositAttempt(attempt))
}

// CompleteManually verifies a user-submitted split transaction.
func (h *DepositHandler) CompleteManually(c *gin.Context) {
	attemptID := c.Param("attempt_id")

	var payload request.ManualCompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] complete-manually start attempt_id=%s tx=%s", attemptID, payload.TxHash)

	attempt, err := h.usecase.CompleteManually(c.Request.Context(), attemptID, payload.TxHash)
	if err != nil {
		log.Printf("[deposit][handler] complete-manually failed attempt_id=%s err=%v", attemptID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDepositAttempt(attempt))
}

// GetBalances returns the wallet's on-chain bucket balances.
func (h *DepositHandler) GetBalances(c *gin.Context) {
	wallet := c.Param("wallet")

	balances, err := h.usecase.BucketBalances(c.Request.Context(), wallet)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBucketBalances(wallet, balances))
}

// GetWeights returns the current allocation configuration.
func (h *DepositHandler) GetWeights(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromWeights(h.config.Snapshot()))
}

// UpdateWeights swaps the allocation configuration. In-flight attempts keep
// the snapshot they were computed with.
func (h *DepositHandler) UpdateWeights(c *gin.Context) {
	var payload request.WeightsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.config.Update(payload.ToWeights()); err != nil {
		log.Printf("[deposit][handler] weights update rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_WEIGHTS", "Weights must cover all buckets and sum to 100", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] weights updated")

	c.JSON(http.StatusOK, response.FromWeights(h.config.Snapshot()))
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReference), errors.Is(err, usecase.ErrInvalidWallet):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotVerified):
		return pkg.NewDomainErrorSimple("SESSION_NOT_VERIFIED", "Session is not verified", http.StatusConflict)
	case errors.Is(err, usecase.ErrVerificationExpired):
		return pkg.NewDomainErrorSimple("VERIFICATION_EXPIRED", "Session expired before execution", http.StatusGone)
	case errors.Is(err, usecase.ErrAttemptNotFound):
		return pkg.NewDomainErrorSimple("ATTEMPT_NOT_FOUND", "Deposit attempt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttemptNotManual):
		return pkg.NewDomainErrorSimple("ATTEMPT_NOT_MANUAL", "Attempt is not awaiting manual completion", http.StatusConflict)
	case errors.Is(err, usecase.ErrAttemptTransitionRace):
		return pkg.NewDomainErrorSimple("ATTEMPT_CONFLICT", "Attempt was updated concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrMismatchedAmounts):
		return pkg.NewDomainErrorSimple("MISMATCHED_AMOUNTS", "Transaction does not match the expected bucket credits", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrTxNotFound):
		return pkg.NewDomainErrorSimple("TX_NOT_FOUND", "Transaction not found on chain", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrTxPending):
		return pkg.NewDomainErrorSimple("TX_PENDING", "Transaction is not yet confirmed, retry later", http.StatusConflict)
	case errors.Is(err, interfaces.ErrTxFailed):
		return pkg.NewDomainErrorSimple("TX_FAILED", "Transaction did not succeed on chain", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrNotSplitCall):
		return pkg.NewDomainErrorSimple("NOT_SPLIT_CALL", "Transaction is not a deposit-and-split call", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidWeights):
		return pkg.NewDomainErrorSimple("INVALID_WEIGHTS", "Weights must cover all buckets and sum to 100", http.StatusBadRequest)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
}
