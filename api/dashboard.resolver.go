package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) dashboard(c *gin.Context) {
	summary, err := h.PicksService.DashboardSummary(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summary)
}
