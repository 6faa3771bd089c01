package main

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"comphub/internal/activity"
	"comphub/internal/auth"
	"comphub/internal/queue"
	"comphub/internal/student"
	"comphub/internal/team"
)

// currentStudent resolves the authenticated student from token claims.
func (a *api) currentStudent(c *gin.Context) (student.Student, bool) {
	claims, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return student.Student{}, false
	}
	st, err := a.students.GetByEmail(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a registered student"})
			return student.Student{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return student.Student{}, false
	}
	return st, true
}

func (a *api) publishActivity(c *gin.Context, e activity.Event) {
	if err := a.queue.Publish(c.Request.Context(), queue.Message{Type: e.Kind, Body: e.Encode()}); err != nil {
		log.Printf("queue publish failed: %v", err)
	}
}

func (a *api) createTeam(c *gin.Context) {
	var req struct {
		CompetitionID   string   `json:"competition_id" binding:"required"`
		Name            string   `json:"name" binding:"required"`
		Motive          string   `json:"motive" binding:"required"`
		ExperienceLevel string   `json:"experience_level" binding:"required"`
		Codes           []string `json:"member_register_numbers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if a.cfg.MaxTeamSize > 0 && len(req.Codes) > a.cfg.MaxTeamSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster exceeds maximum team size"})
		return
	}

	created, err := a.teams.Create(c.Request.Context(), team.CreateInput{
		CompetitionID:   req.CompetitionID,
		Name:            req.Name,
		Motive:          req.Motive,
		ExperienceLevel: req.ExperienceLevel,
		Codes:           req.Codes,
	})
	if err != nil {
		a.writeTeamError(c, err)
		return
	}

	a.publishActivity(c, activity.Event{Kind: activity.KindTeamCreated, TeamID: created.ID, TeamName: created.Name})
	c.JSON(http.StatusCreated, gin.H{"team": created})
}

func (a *api) listMyTeams(c *gin.Context) {
	st, ok := a.currentStudent(c)
	if !ok {
		return
	}
	teams, err := a.teamRepo.ListByStudent(c.Request.Context(), st.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (a *api) getTeam(c *gin.Context) {
	t, err := a.teams.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.writeTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": t})
}

func (a *api) updateTeam(c *gin.Context) {
	var req struct {
		Name            string   `json:"name" binding:"required"`
		Motive          string   `json:"motive" binding:"required"`
		ExperienceLevel string   `json:"experience_level" binding:"required"`
		Codes           []string `json:"member_register_numbers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if a.cfg.MaxTeamSize > 0 && len(req.Codes) > a.cfg.MaxTeamSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster exceeds maximum team size"})
		return
	}

	updated, err := a.teams.ReplaceRoster(c.Request.Context(), c.Param("id"), team.UpdateInput{
		Name:            req.Name,
		Motive:          req.Motive,
		ExperienceLevel: req.ExperienceLevel,
		Codes:           req.Codes,
	})
	if err != nil {
		a.writeTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": updated})
}

func (a *api) deleteTeam(c *gin.Context) {
	id := c.Param("id")
	if err := a.teams.Delete(c.Request.Context(), id); err != nil {
		a.writeTeamError(c, err)
		return
	}
	a.publishActivity(c, activity.Event{Kind: activity.KindTeamDeleted, TeamID: id})
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// setTeamStatus drives the registration-result workflow. Moving a team
// into SHORTLISTED or WON requires an uploaded certificate; that gate
// lives here, not in the workflow itself.
func (a *api) setTeamStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	next := team.Status(req.Status)

	if next == team.StatusShortlisted || next == team.StatusWon {
		t, err := a.teams.Get(c.Request.Context(), id)
		if err != nil {
			a.writeTeamError(c, err)
			return
		}
		if t.CertificateURL == "" {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "certificate must be uploaded first"})
			return
		}
	}

	updated, err := a.teams.SetStatus(c.Request.Context(), id, next)
	if err != nil {
		a.writeTeamError(c, err)
		return
	}

	a.publishActivity(c, activity.Event{
		Kind:     activity.KindStatusChanged,
		TeamID:   updated.ID,
		TeamName: updated.Name,
		Detail:   string(updated.Status),
	})
	c.JSON(http.StatusOK, gin.H{"team": updated})
}

// uploadCertificate stores a proof-of-result image and records its
// public URL on the team.
func (a *api) uploadCertificate(c *gin.Context) {
	if a.certs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "certificate storage not configured"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read file failed"})
		return
	}

	result, err := a.certs.Upload(data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("certificate upload failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "certificate upload failed"})
		return
	}

	updated, err := a.teamRepo.SetCertificateURL(c.Request.Context(), c.Param("id"), result.PublicURL)
	if err != nil {
		a.writeTeamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.PublicURL, "team": updated})
}

func (a *api) studentTeamStats(c *gin.Context) {
	st, ok := a.currentStudent(c)
	if !ok {
		return
	}
	stats, err := a.teamRepo.StudentStats(c.Request.Context(), st.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (a *api) studentDashboard(c *gin.Context) {
	st, ok := a.currentStudent(c)
	if !ok {
		return
	}
	stats, err := a.teamRepo.DashStats(c.Request.Context(), st.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// writeTeamError maps workflow errors onto HTTP responses.
func (a *api) writeTeamError(c *gin.Context, err error) {
	var vErr *team.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason, "unknown_codes": vErr.UnknownCodes})
	case errors.Is(err, team.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
