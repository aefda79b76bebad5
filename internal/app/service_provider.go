package app

import (
	authAPI "campus_market/internal/api/auth"
	bingoAPI "campus_market/internal/api/bingo"
	diceAPI "campus_market/internal/api/dice"
	pricingAPI "campus_market/internal/api/pricing"
	statsAPI "campus_market/internal/api/stats"
	walletAPI "campus_market/internal/api/wallet"
	wheelAPI "campus_market/internal/api/wheel"
	"campus_market/internal/config"
	"campus_market/internal/config/env"
	"campus_market/internal/middleware"
	"campus_market/internal/repository"
	"campus_market/internal/repository/auth_repo"
	"campus_market/internal/repository/bingo_session_repo"
	"campus_market/internal/repository/round_repo"
	"campus_market/internal/repository/stats_repo"
	"campus_market/internal/repository/user_repo"
	"campus_market/internal/service"
	"campus_market/internal/service/auth"
	"campus_market/internal/service/bingo"
	"campus_market/internal/service/dice"
	"campus_market/internal/service/pricing"
	"campus_market/internal/service/stats"
	"campus_market/internal/service/wallet"
	"campus_market/internal/service/wheel"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Config bits
	jwtCfg     config.JWTConfig
	gamesCfg   config.GamesConfig
	pricingCfg config.PricingConfig

	// Auth bits
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Round history bits
	roundRepo repository.RoundRepository

	// Stats bits
	statsRepo repository.StatsRepository
	statsServ service.StatsService
	statsHand *statsAPI.Handler

	// Dice bits
	diceServ service.DiceService
	diceHand *diceAPI.Handler

	// Bingo bits
	bingoSessionRepo repository.BingoSessionRepository
	bingoServ        service.BingoService
	bingoHand        *bingoAPI.Handler

	// Wheel bits
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler

	// Wallet bits
	walletServ service.WalletService
	walletHand *walletAPI.Handler

	// Pricing bits
	pricingServ service.PricingService
	pricingHand *pricingAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) PricingCfg() config.PricingConfig {
	if sp.pricingCfg == nil {
		cfg, err := env.NewPricingConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get pricing config: " + err.Error())
		}
		sp.pricingCfg = cfg
	}
	return sp.pricingCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) RoundRepo(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) StatsRepo() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) BingoSessionRepo() repository.BingoSessionRepository {
	if sp.bingoSessionRepo == nil {
		sp.bingoSessionRepo = bingo_session_repo.NewBingoSessionRepository()
	}
	return sp.bingoSessionRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) DiceService(ctx context.Context) service.DiceService {
	if sp.diceServ == nil {
		sp.diceServ = dice.NewDiceService(sp.GamesCfg(), sp.UserRepo(ctx), sp.RoundRepo(ctx), sp.StatsRepo(), sp.TXManager(ctx))
	}
	return sp.diceServ
}

func (sp *ServiceProvider) DiceHandler(ctx context.Context) *diceAPI.Handler {
	if sp.diceHand == nil {
		sp.diceHand = diceAPI.NewHandler(diceAPI.HandlerDeps{Serv: sp.DiceService(ctx)})
	}
	return sp.diceHand
}

func (sp *ServiceProvider) BingoService(ctx context.Context) service.BingoService {
	if sp.bingoServ == nil {
		sp.bingoServ = bingo.NewBingoService(sp.GamesCfg(), sp.UserRepo(ctx), sp.RoundRepo(ctx), sp.BingoSessionRepo(), sp.StatsRepo(), sp.TXManager(ctx))
	}
	return sp.bingoServ
}

func (sp *ServiceProvider) BingoHandler(ctx context.Context) *bingoAPI.Handler {
	if sp.bingoHand == nil {
		sp.bingoHand = bingoAPI.NewHandler(bingoAPI.HandlerDeps{Serv: sp.BingoService(ctx)})
	}
	return sp.bingoHand
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.GamesCfg(), sp.UserRepo(ctx), sp.RoundRepo(ctx), sp.StatsRepo(), sp.TXManager(ctx))
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.WheelService(ctx)})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(sp.UserRepo(ctx), sp.RoundRepo(ctx), sp.TXManager(ctx))
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) PricingService() service.PricingService {
	if sp.pricingServ == nil {
		sp.pricingServ = pricing.NewPricingService(sp.PricingCfg())
	}
	return sp.pricingServ
}

func (sp *ServiceProvider) PricingHandler() *pricingAPI.Handler {
	if sp.pricingHand == nil {
		sp.pricingHand = pricingAPI.NewHandler(pricingAPI.HandlerDeps{Serv: sp.PricingService()})
	}
	return sp.pricingHand
}

func (sp *ServiceProvider) StatsService() service.StatsService {
	if sp.statsServ == nil {
		sp.statsServ = stats.NewStatsService(sp.StatsRepo())
	}
	return sp.statsServ
}

func (sp *ServiceProvider) StatsHandler() *statsAPI.Handler {
	if sp.statsHand == nil {
		sp.statsHand = statsAPI.NewHandler(statsAPI.HandlerDeps{Serv: sp.StatsService()})
	}
	return sp.statsHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Pricing endpoints - без авторизации, калькулятор открытый
		pricingHandler := sp.PricingHandler()
		r.Route("/pricing", func(rr chi.Router) {
			rr.Post("/quote", pricingHandler.Quote)
			rr.Post("/squad-fee", pricingHandler.SquadFee)
		})

		// Раскладка колеса и статистика - тоже открытые
		r.Get("/wheel/segments", sp.WheelHandler(ctx).Segments)
		r.Get("/stats", sp.StatsHandler().Snapshot)

		// Игровые и кошельковые endpoints под авторизацией
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			diceHandler := sp.DiceHandler(ctx)
			rr.Route("/dice", func(rrr chi.Router) {
				rrr.Post("/play", diceHandler.Play)
				rrr.Post("/practice", diceHandler.Practice)
			})

			bingoHandler := sp.BingoHandler(ctx)
			rr.Route("/bingo", func(rrr chi.Router) {
				rrr.Post("/start", bingoHandler.Start)
				rrr.Post("/call", bingoHandler.Call)
				rrr.Post("/mark", bingoHandler.Mark)
				rrr.Post("/claim", bingoHandler.Claim)
				rrr.Post("/practice", bingoHandler.Practice)
			})

			rr.Post("/wheel/spin", sp.WheelHandler(ctx).Spin)

			walletHandler := sp.WalletHandler(ctx)
			rr.Route("/wallet", func(rrr chi.Router) {
				rrr.Post("/deposit", walletHandler.Deposit)
				rrr.Post("/withdraw", walletHandler.Withdraw)
				rrr.Post("/hold", walletHandler.Hold)
				rrr.Get("/balance", walletHandler.Balance)
				rrr.Get("/history", walletHandler.History)
			})
		})

		sp.router = r
	}

	return sp.router
}
