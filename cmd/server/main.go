package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/router"
	authadapters "stock_dashboard/internal/feature/auth/adapters"
	authhandler "stock_dashboard/internal/feature/auth/transport/handler"
	authusecase "stock_dashboard/internal/feature/auth/usecase"
	"stock_dashboard/internal/feature/stocks/adapters/fallback"
	"stock_dashboard/internal/feature/stocks/adapters/gemini"
	"stock_dashboard/internal/feature/stocks/adapters/staticdata"
	"stock_dashboard/internal/feature/stocks/adapters/twelvedata"
	stockhandler "stock_dashboard/internal/feature/stocks/transport/handler"
	stockusecase "stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/platform/cache"
	platformdb "stock_dashboard/internal/platform/db"
	platformhttp "stock_dashboard/internal/platform/http"
	platformjwt "stock_dashboard/internal/platform/jwt"
	platformredis "stock_dashboard/internal/platform/redis"
	"stock_dashboard/internal/shared/ratelimiter"
)

// defaultUpstreamRPM matches the free-tier credit budget of the market data
// provider.
const defaultUpstreamRPM = 8

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	db := platformdb.OpenDB()

	// Redis is optional; without it the service runs uncached.
	var store stockusecase.Cache
	if rdb, err := platformredis.NewRedisClient(); err != nil {
		slog.Warn("redis unavailable, running without cache", "error", err)
	} else {
		defer func(rdb *redisv9.Client) {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}(rdb)
		store = cache.NewRedisStore(rdb, "stocks")
	}

	market := buildMarket()
	translator := buildTranslator(ctx)
	limiter := ratelimiter.NewTokenBucket(upstreamRPM(), upstreamRPM())

	userRepo := authadapters.NewUserRepository(db)
	jwtGen := platformjwt.NewGenerator(os.Getenv(platformjwt.EnvKeyJWTSecret), platformjwt.DefaultExpiration)

	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	stockUC := stockusecase.NewStockUsecase(market, store, translator, limiter)

	authH := authhandler.NewAuthHandler(authUC)
	stockH := stockhandler.NewStockHandler(stockUC)

	r := router.NewRouter(authH, stockH)

	if os.Getenv(platformjwt.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set, set a strong secret in production")
	}

	if err := r.Run(":8080"); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// buildMarket assembles the market data source: the live provider wrapped
// with the static fallback, or static data alone when no API key is set.
func buildMarket() stockusecase.MarketRepository {
	static := staticdata.NewMarket()

	cfg := twelvedata.LoadConfig()
	if cfg.APIKey == "" {
		slog.Warn("TWELVE_DATA_API_KEY is not set, serving static market data only")
		return static
	}

	live := twelvedata.NewClient(cfg, platformhttp.NewHTTPClient(cfg.Timeout))
	return fallback.NewMarket(live, static)
}

// buildTranslator enables Korean descriptions when Gemini credentials are
// configured; otherwise descriptions stay in the original language.
func buildTranslator(ctx context.Context) stockusecase.Translator {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "" {
		slog.Info("gemini credentials not configured, description translation disabled")
		return nil
	}
	t, err := gemini.NewTranslator(ctx)
	if err != nil {
		slog.Warn("failed to initialize translator, continuing without it", "error", err)
		return nil
	}
	return t
}

func upstreamRPM() int {
	if v := os.Getenv("UPSTREAM_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultUpstreamRPM
}
