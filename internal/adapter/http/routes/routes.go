package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "bucketvault/docs" // This will be auto-generated
	"bucketvault/internal/adapter/http/handlers"
	"bucketvault/internal/adapter/persistence/repository"
	"bucketvault/internal/domain/entities"
	"bucketvault/internal/infrastructure/chain"
	"bucketvault/internal/infrastructure/database"
	"bucketvault/internal/infrastructure/payments"
	"bucketvault/internal/infrastructure/relay"
	"bucketvault/internal/usecase"
	"bucketvault/internal/usecase/interfaces"
	"bucketvault/pkg/timeutil"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	clock := timeutil.SystemClock()

	var sessionRepo interfaces.ISessionRepository
	var attemptRepo interfaces.IDepositAttemptRepository
	if os.Getenv("SESSION_STORE") == "memory" {
		log.Printf("[routes] using in-memory session store")
		sessionRepo = repository.NewSessionMemoryRepository()
		attemptRepo = repository.NewAttemptMemoryRepository()
	} else {
		ddb := database.ConnectDynamoDB(context.Background())
		sessionRepo = repository.NewSessionDynamoRepository(ddb)
		attemptRepo = repository.NewAttemptDynamoRepository(ddb)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	walletRelay := buildWalletRelay()
	vault := buildVaultLedger()

	allocConfig, err := usecase.NewAllocationConfig(entities.DefaultWeights())
	if err != nil {
		log.Fatalf("invalid default allocation weights: %v", err)
	}

	sessionUseCase := usecase.NewPaymentSessionUseCase(sessionRepo, paymentGateway, clock)
	depositUseCase := usecase.NewDepositSplitUseCase(sessionRepo, attemptRepo, walletRelay, vault, allocConfig, clock)
	faucetUseCase := usecase.NewFaucetUseCase(walletRelay, clock, entities.TokenUSDC, faucetAmount(), faucetCooldownSeconds())

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase, allocConfig)
	faucetHandler := handlers.NewFaucetHandler(faucetUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addVaultRoutes(v1, sessionHandler, depositHandler, faucetHandler)
}

func buildWalletRelay() interfaces.IWalletRelay {
	url := os.Getenv("RELAY_URL")
	if url == "" || os.Getenv("RELAY_MOCK") != "" {
		log.Printf("[routes] wallet relay in mock mode")
		return relay.NewMockRelay()
	}
	return relay.NewClient(url, os.Getenv("RELAY_API_KEY"))
}

func buildVaultLedger() interfaces.IVaultLedger {
	rpcURL := os.Getenv("XCB_RPC_URL")
	vaultAddr := os.Getenv("VAULT_CONTRACT_ADDRESS")
	if rpcURL == "" || vaultAddr == "" || os.Getenv("CHAIN_MOCK") != "" {
		log.Printf("[routes] vault ledger in mock mode")
		return chain.NewMockVaultLedger()
	}

	ledger, err := chain.NewVaultLedger(rpcURL, vaultAddr)
	if err != nil {
		log.Printf("[routes] vault ledger unavailable, falling back to mock: %v", err)
		return chain.NewMockVaultLedger()
	}
	return ledger
}

func faucetAmount() int64 {
	if v := os.Getenv("FAUCET_AMOUNT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 100_000000 // 100 tokens at 6 decimals
}

func faucetCooldownSeconds() int64 {
	if v := os.Getenv("FAUCET_COOLDOWN_SECONDS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 86400
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
