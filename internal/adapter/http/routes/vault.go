package routes

import (
	"bucketvault/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions    = "/sessions"
	PathDeposits    = "/deposits"
	PathAllocations = "/allocations"
	PathFaucet      = "/faucet"
)

func addVaultRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, depositHandler *handlers.DepositHandler, faucetHandler *handlers.FaucetHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateCheckout)
		sessions.GET("/wallet/:wallet", sessionHandler.GetActiveByWallet)
		sessions.POST("/:reference/verify", sessionHandler.VerifyByReference)
		sessions.DELETE("/:id", sessionHandler.ClearByID)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:reference/execute", depositHandler.Execute)
		deposits.POST("/attempts/:attempt_id/complete", depositHandler.CompleteManually)
		deposits.GET("/balances/:wallet", depositHandler.GetBalances)
	}

	allocations := rg.Group(PathAllocations)
	{
		allocations.GET("/weights", depositHandler.GetWeights)
		allocations.PUT("/weights", depositHandler.UpdateWeights)
	}

	faucet := rg.Group(PathFaucet)
	{
		faucet.GET("/:wallet", faucetHandler.GetStatus)
		faucet.POST("/:wallet/claim", faucetHandler.Claim)
	}
}
