package app

import (
	"context"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"casino-platform/internal/audit"
	"casino-platform/internal/casino"
	"casino-platform/internal/config"
	"casino-platform/internal/db"
	"casino-platform/internal/event"
	"casino-platform/internal/games"
	"casino-platform/internal/jobs"
	"casino-platform/internal/ledger"
	"casino-platform/internal/monitoring"
	"casino-platform/internal/rounds"
	"casino-platform/internal/security"
	"casino-platform/internal/settlement"
	"casino-platform/internal/wallet"
	"casino-platform/internal/withdraw"
	"casino-platform/internal/ws"
)

type Server struct {
	app  *fiber.App
	jobs *jobs.Manager
	cfg  *config.Config
	log  *zap.Logger
}

func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	database, err := db.Init(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := games.Seed(database); err != nil {
		return nil, err
	}

	monitoring.Init()

	bus := event.NewBus()
	auditService := audit.New(database, log)
	ledgerService := ledger.New(database)
	walletService := wallet.New(database, ledgerService, bus, log)
	gameService := games.New(database, auditService, bus, log)
	coordinator := settlement.New(database, walletService, ledgerService, bus, log)
	withdrawService := withdraw.New(database, walletService, auditService, bus, log)

	manager := jobs.New(log)

	var store rounds.Store
	if cfg.RedisAddr != "" {
		store = rounds.NewRedisStore(cfg.RedisAddr)
	} else {
		memStore := rounds.NewMemoryStore()
		manager.Register(rounds.NewSweeper(memStore, cfg.SweepInterval, log))
		store = memStore
	}

	casinoService := casino.NewService(gameService, walletService, coordinator, store, cfg.RoundTTL, log)

	hub := ws.NewHub()
	leaderboard := casino.NewLeaderboard()
	rtp := casino.NewRTPTracker()
	casino.RegisterConsumers(bus, leaderboard, rtp, hub, log)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.UserGuard(cfg.APIKey))
	casino.RegisterRoutes(api, casinoService, leaderboard)
	wallet.RegisterRoutes(api, walletService)
	games.RegisterUserRoutes(api, gameService)

	admin := app.Group("/api/admin", security.AdminGuard(cfg.AdminToken))
	withdraw.RegisterRoutes(admin, withdrawService)
	games.RegisterAdminRoutes(admin, gameService)

	owner := app.Group("/api/owner", security.OwnerGuard(cfg.OwnerToken))
	games.RegisterOwnerRoutes(owner, gameService)

	return &Server{app: app, jobs: manager, cfg: cfg, log: log}, nil
}

func (s *Server) Start(ctx context.Context) error {
	go s.jobs.Start(ctx)

	go func() {
		<-ctx.Done()
		s.app.Shutdown()
	}()

	s.log.Info("listening", zap.String("port", s.cfg.Port))
	return s.app.Listen(":" + s.cfg.Port)
}
