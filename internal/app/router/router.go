// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "stock_dashboard/internal/feature/auth/transport/handler"
	stockhandler "stock_dashboard/internal/feature/stocks/transport/handler"
	jwtmw "stock_dashboard/internal/platform/jwt"
	platformhandler "stock_dashboard/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered.
//
// Market data endpoints are public; only /auth/me requires a token.
func NewRouter(authHandler *authhandler.AuthHandler, stockHandler *stockhandler.StockHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", jwtmw.AuthRequired(), authHandler.Me)
	}

	stocks := r.Group("/stocks")
	{
		stocks.GET("/search", stockHandler.SearchStocks)
		stocks.GET("/popular", stockHandler.GetPopularStocks)
		stocks.GET("/compare", stockHandler.CompareStocks)
		stocks.GET("/top-market-cap", stockHandler.GetTopMarketCapStocks)
		stocks.GET("/index/:index_name/stocks", stockHandler.GetIndexStocks)

		stocks.GET("/:symbol/info", stockHandler.GetStockInfo)
		stocks.GET("/:symbol/chart", stockHandler.GetStockChart)
		stocks.GET("/:symbol/financial", stockHandler.GetFinancialData)
		stocks.GET("/:symbol/dividends", stockHandler.GetDividendHistory)
		stocks.GET("/:symbol/description", stockHandler.GetCompanyDescription)
	}

	return r
}
