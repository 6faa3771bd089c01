package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (a *api) analyticsOverview(c *gin.Context) {
	overview, err := a.analytics.GetOverview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}

func (a *api) analyticsCategories(c *gin.Context) {
	counts, err := a.analytics.CountByCategory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": counts})
}

func (a *api) analyticsMonths(c *gin.Context) {
	counts, err := a.analytics.RegistrationsByMonth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": counts})
}

func (a *api) analyticsMostRegistered(c *gin.Context) {
	comps, err := a.analytics.MostRegistered(c.Request.Context(), queryLimit(c, 5))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitions": comps})
}

func (a *api) analyticsRecentCompleted(c *gin.Context) {
	comps, err := a.analytics.RecentCompleted(c.Request.Context(), queryLimit(c, 5))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitions": comps})
}

func (a *api) analyticsActivity(c *gin.Context) {
	entries, err := a.activity.ListRecent(c.Request.Context(), queryLimit(c, 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}

func queryLimit(c *gin.Context, fallback int) int {
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
