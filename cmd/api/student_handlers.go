package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comphub/internal/auth"
	"comphub/internal/student"
	"comphub/internal/teacher"
)

type studentRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	RegisterNo string `json:"register_no" binding:"required"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

func (a *api) addStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := a.students.Insert(c.Request.Context(), student.Student{
		Name:       req.Name,
		Email:      req.Email,
		RegisterNo: req.RegisterNo,
		Department: req.Department,
		Year:       req.Year,
	})
	if err != nil {
		if errors.Is(err, student.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "student with this email or register number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": created})
}

func (a *api) listStudents(c *gin.Context) {
	students, err := a.students.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

func (a *api) updateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := a.students.Update(c.Request.Context(), student.Student{
		ID:         c.Param("id"),
		Name:       req.Name,
		Email:      req.Email,
		RegisterNo: req.RegisterNo,
		Department: req.Department,
		Year:       req.Year,
	})
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": updated})
}

func (a *api) deleteStudent(c *gin.Context) {
	if err := a.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (a *api) getStudentProfile(c *gin.Context) {
	st, ok := a.currentStudent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

func (a *api) updateStudentProfile(c *gin.Context) {
	st, ok := a.currentStudent(c)
	if !ok {
		return
	}

	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := a.students.Update(c.Request.Context(), student.Student{
		ID:         st.ID,
		Name:       req.Name,
		Email:      req.Email,
		RegisterNo: req.RegisterNo,
		Department: req.Department,
		Year:       req.Year,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": updated})
}

func (a *api) addTeacher(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := a.teachers.Insert(c.Request.Context(), teacher.Teacher{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"teacher": created})
}

func (a *api) getTeacherProfile(c *gin.Context) {
	claims, _ := auth.FromContext(c)
	t, err := a.teachers.GetByEmail(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teacher": t})
}

func (a *api) updateTeacherProfile(c *gin.Context) {
	claims, _ := auth.FromContext(c)
	existing, err := a.teachers.GetByEmail(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := a.teachers.Update(c.Request.Context(), teacher.Teacher{
		ID:         existing.ID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teacher": updated})
}
