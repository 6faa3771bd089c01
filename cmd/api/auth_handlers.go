package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comphub/internal/auth"
	"comphub/internal/student"
	"comphub/internal/teacher"
)

// issueToken exchanges a known account email for a token pair. The
// account must already exist in the students or teachers table.
func (a *api) issueToken(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Role  string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Role {
	case auth.RoleStudent:
		if _, err := a.students.GetByEmail(c.Request.Context(), req.Email); err != nil {
			if errors.Is(err, student.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case auth.RoleTeacher:
		if _, err := a.teachers.GetByEmail(c.Request.Context(), req.Email); err != nil {
			if errors.Is(err, teacher.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be student or teacher"})
		return
	}

	tokens, err := auth.Issue(req.Email, req.Role, a.cfg.JWTIssuer, a.cfg.JWTSigningKey, a.cfg.AccessTTL, a.cfg.RefreshTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_at":    tokens.AccessExp.Unix(),
	})
}
