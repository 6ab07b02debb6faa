package api

import (
	"daypicks/internal/registry"
	"daypicks/internal/service"

	"github.com/gin-gonic/gin"
)

type scanRequest struct {
	Tickers    []string `json:"tickers"`
	Strategies []string `json:"strategies"`
	DryRun     bool     `json:"dryRun"`
	Top        int      `json:"top"`
}

func (h ApiHandler) scan(c *gin.Context) {
	var requestBody scanRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	scanTypes := make([]registry.ScanType, 0, len(requestBody.Strategies))
	for _, s := range requestBody.Strategies {
		scanTypes = append(scanTypes, registry.ScanType(s))
	}

	result, err := h.ScannerService.Scan(c.Request.Context(), service.ScanInput{
		Tickers:    requestBody.Tickers,
		Strategies: scanTypes,
		DryRun:     requestBody.DryRun,
		Top:        requestBody.Top,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
