package api

import (
	"context"
	"database/sql"
	"daypicks/internal/logger"
	"daypicks/internal/repository"
	"daypicks/internal/service"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                  *sql.DB
	ScannerService      service.ScannerService
	PicksService        service.PicksService
	ResolverService     service.ResolverService
	LearningService     service.LearningService
	BudgetService       service.BudgetService
	WatchlistRepository repository.WatchlistRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(loggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to daypicks"})
	})
	router.POST("/scan", m.scan)
	router.GET("/picks", m.listPicks)
	router.POST("/resolve", m.resolve)
	router.GET("/learning/analysis", m.learningAnalysis)
	router.GET("/learning/recommendations", m.learningRecommendations)
	router.GET("/learning/tickers", m.tickerPerformance)
	router.POST("/learning/calibrate", m.calibrate)
	router.POST("/budget", m.allocateBudget)
	router.GET("/dashboard", m.dashboard)
	router.GET("/watchlist", m.listWatchlist)

	return router.Run(fmt.Sprintf(":%d", port))
}

func loggerMiddleware(c *gin.Context) {
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, logger.New())
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
