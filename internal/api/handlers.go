package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SuchitArtal/virtual-lab/internal/app"
	"github.com/SuchitArtal/virtual-lab/internal/service"
)

/* ----------------------------------------------------------------
   DTO types
-----------------------------------------------------------------*/

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	LabName string `json:"labName"`
}

type ApproveRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	LabURL   string `json:"labUrl"`
}

/* ================================================================
   STUDENT ENDPOINTS
================================================================ */

func handleSubmitRequest(a *app.App, c *gin.Context) {
	var in SubmitRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "All fields are required"})
		return
	}

	id, err := a.Requests.Submit(c.Request.Context(), in.Name, in.Email, in.LabName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(400, gin.H{"error": "All fields are required"})
		case errors.Is(err, service.ErrActiveRequestExists):
			c.JSON(400, gin.H{"error": "You already have an active request. Please check your status."})
		default:
			a.Logger().WithError(err).Error("create request")
			c.JSON(500, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(200, gin.H{
		"success":   true,
		"message":   "Request submitted successfully",
		"requestId": id,
	})
}

func handleStatusLookup(a *app.App, c *gin.Context) {
	view, found, err := a.Status.Lookup(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, service.ErrMissingEmail) {
			c.JSON(400, gin.H{"error": "Email is required"})
			return
		}
		a.Logger().WithError(err).Error("fetch status")
		c.JSON(500, gin.H{"error": "Internal server error"})
		return
	}
	if !found {
		c.JSON(200, gin.H{"found": false})
		return
	}

	c.JSON(200, gin.H{
		"found":     true,
		"status":    view.Status,
		"name":      view.Name,
		"labName":   view.LabName,
		"labUrl":    view.LabURL,
		"createdAt": view.CreatedAt,
	})
}

/* ================================================================
   ADMIN ENDPOINTS
================================================================ */

func handleAdminListRequests(a *app.App, c *gin.Context) {
	requests, err := a.Admin.ListAll(c.Request.Context(),
		c.Query("username"), c.Query("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		a.Logger().WithError(err).Error("list requests")
		c.JSON(500, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(200, gin.H{"requests": requests})
}

func handleAdminApprove(a *app.App, c *gin.Context) {
	var in ApproveRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Lab URL is required"})
		return
	}

	err := a.Admin.Approve(c.Request.Context(),
		in.Username, in.Password, c.Param("id"), in.LabURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(401, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, service.ErrMissingLabURL):
			c.JSON(400, gin.H{"error": "Lab URL is required"})
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(404, gin.H{"error": "Request not found"})
		default:
			a.Logger().WithError(err).Error("approve request")
			c.JSON(500, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Request approved successfully",
	})
}
