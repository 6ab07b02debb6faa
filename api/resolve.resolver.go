package api

import (
	"github.com/gin-gonic/gin"
)

type resolveRequest struct {
	MaxDaysLookback int `json:"maxDaysLookback"`
}

func (h ApiHandler) resolve(c *gin.Context) {
	var requestBody resolveRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := h.ResolverService.Resolve(c.Request.Context(), requestBody.MaxDaysLookback)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
