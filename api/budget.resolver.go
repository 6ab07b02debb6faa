package api

import (
	"daypicks/internal/domain"
	"daypicks/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

type budgetRequest struct {
	Budget  float64 `json:"budget"`
	CdrOnly bool    `json:"cdrOnly"`
	Style   string  `json:"style"`
	Top     int     `json:"top"`
	Days    int     `json:"days"`
}

func (h ApiHandler) allocateBudget(c *gin.Context) {
	var requestBody budgetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := h.BudgetService.Allocate(c.Request.Context(), service.AllocateInput{
		Budget:  requestBody.Budget,
		CdrOnly: requestBody.CdrOnly,
		Style:   domain.TradingStyle(requestBody.Style),
		Top:     requestBody.Top,
		Days:    requestBody.Days,
	})
	if errors.Is(err, service.ErrInvalidBudget) {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
