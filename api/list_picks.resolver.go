package api

import (
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) listPicks(c *gin.Context) {
	input := service.ListPicksInput{
		Sort:    c.Query("sort"),
		CdrOnly: c.Query("cdrOnly") == "true",
	}
	if ticker := c.Query("ticker"); ticker != "" {
		input.Ticker = &ticker
	}
	if strategy := c.Query("strategy"); strategy != "" {
		input.Strategy = &strategy
	}
	if confidence := c.Query("confidence"); confidence != "" {
		pc := model.PickConfidence(confidence)
		input.Confidence = &pc
	}
	if days := c.Query("days"); days != "" {
		d, err := strconv.Atoi(days)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		input.Days = d
	}

	result, err := h.PicksService.List(c.Request.Context(), input)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
