package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) learningAnalysis(c *gin.Context) {
	analysis, err := h.LearningService.Analyze(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, analysis)
}

func (h ApiHandler) learningRecommendations(c *gin.Context) {
	recommendations, err := h.LearningService.Recommendations(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"recommendations": recommendations})
}

func (h ApiHandler) tickerPerformance(c *gin.Context) {
	performance, err := h.LearningService.TickerPerformance(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"tickers": performance})
}

func (h ApiHandler) calibrate(c *gin.Context) {
	calibration, err := h.LearningService.Calibrate(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, calibration)
}
