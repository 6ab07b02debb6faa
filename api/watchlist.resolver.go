package api

import (
	"daypicks/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) listWatchlist(c *gin.Context) {
	var (
		tickers []model.WatchlistTicker
		err     error
	)
	if c.Query("cdrOnly") == "true" {
		tickers, err = h.WatchlistRepository.ListCdr()
	} else {
		tickers, err = h.WatchlistRepository.List()
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"tickers": tickers})
}
