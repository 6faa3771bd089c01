package main

import (
	"github.com/gin-gonic/gin"

	"comphub/internal/auth"
)

func (a *api) registerRoutes(r *gin.Engine) {
	r.POST("/v1/auth/token", a.issueToken)

	// Public catalogue
	r.GET("/v1/competitions", a.listCompetitions)
	r.GET("/v1/competitions/:id", a.getCompetition)

	authed := r.Group("/v1", auth.Bearer(a.cfg.JWTSigningKey, a.cfg.JWTIssuer))

	// Student-facing
	authed.GET("/me", a.getStudentProfile)
	authed.PUT("/me", a.updateStudentProfile)
	authed.POST("/teams", a.createTeam)
	authed.GET("/teams", a.listMyTeams)
	authed.GET("/teams/stats", a.studentTeamStats)
	authed.GET("/teams/dashboard", a.studentDashboard)
	authed.GET("/teams/:id", a.getTeam)
	authed.PUT("/teams/:id", a.updateTeam)
	authed.DELETE("/teams/:id", a.deleteTeam)
	authed.POST("/teams/:id/certificate", a.uploadCertificate)

	// Teacher-only administration
	admin := authed.Group("", auth.RequireRole(auth.RoleTeacher))
	admin.POST("/competitions", a.createCompetition)
	admin.PUT("/competitions/:id", a.updateCompetition)
	admin.DELETE("/competitions/:id", a.retireCompetition)
	admin.GET("/students", a.listStudents)
	admin.POST("/students", a.addStudent)
	admin.PUT("/students/:id", a.updateStudent)
	admin.DELETE("/students/:id", a.deleteStudent)
	admin.POST("/teachers", a.addTeacher)
	admin.GET("/teachers/me", a.getTeacherProfile)
	admin.PUT("/teachers/me", a.updateTeacherProfile)
	admin.PATCH("/teams/:id/status", a.setTeamStatus)
	admin.GET("/analytics/overview", a.analyticsOverview)
	admin.GET("/analytics/categories", a.analyticsCategories)
	admin.GET("/analytics/months", a.analyticsMonths)
	admin.GET("/analytics/most", a.analyticsMostRegistered)
	admin.GET("/analytics/recent", a.analyticsRecentCompleted)
	admin.GET("/analytics/activity", a.analyticsActivity)
}
