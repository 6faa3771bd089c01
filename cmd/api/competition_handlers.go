package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comphub/internal/competition"
)

type competitionRequest struct {
	Name      string    `json:"name" binding:"required"`
	URL       string    `json:"url" binding:"required"`
	About     string    `json:"about"`
	Category  string    `json:"category" binding:"required"`
	Status    string    `json:"status"`
	Deadline  time.Time `json:"deadline" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Location  string    `json:"location"`
	TeamSize  int       `json:"team_size"`
	PrizePool int64     `json:"prize_pool"`
	Priority  string    `json:"priority"`
}

func (req competitionRequest) toModel() competition.Competition {
	return competition.Competition{
		Name:      req.Name,
		URL:       req.URL,
		About:     req.About,
		Category:  req.Category,
		Status:    competition.Status(req.Status),
		Deadline:  req.Deadline,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Location:  req.Location,
		TeamSize:  req.TeamSize,
		PrizePool: req.PrizePool,
		Priority:  req.Priority,
	}
}

func (a *api) createCompetition(c *gin.Context) {
	var req competitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comp := req.toModel()
	if comp.Status != "" && !comp.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	created, err := a.comps.Insert(c.Request.Context(), comp)
	if err != nil {
		if errors.Is(err, competition.ErrDuplicateURL) {
			c.JSON(http.StatusConflict, gin.H{"error": "competition with this url already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"competition": created})
}

func (a *api) updateCompetition(c *gin.Context) {
	var req competitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comp := req.toModel()
	comp.ID = c.Param("id")
	if comp.Status != "" && !comp.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	updated, err := a.comps.Update(c.Request.Context(), comp)
	if err != nil {
		if errors.Is(err, competition.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"competition": updated})
}

// retireCompetition is a soft delete: the competition is forced
// COMPLETED instead of being removed.
func (a *api) retireCompetition(c *gin.Context) {
	if err := a.comps.Retire(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, competition.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "retired"})
}

func (a *api) listCompetitions(c *gin.Context) {
	comps, err := a.comps.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitions": comps})
}

func (a *api) getCompetition(c *gin.Context) {
	comp, err := a.comps.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, competition.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "competition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"competition": comp})
}
