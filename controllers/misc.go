package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/reporting"
)

// ServerTime exposes the server clock next to IST, a debugging aid for the
// timezone-sensitive reports.
func ServerTime(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"time":    now.String(),
		"timeIST": now.In(reporting.IST).Format("2006-01-02 15:04:05"),
	})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
