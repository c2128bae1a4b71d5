package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/th3akash/taste-haven-backend/entity"
	"github.com/th3akash/taste-haven-backend/pkg/resp"
	"github.com/th3akash/taste-haven-backend/services"
)

type ChefController struct {
	Service *services.ChefService
}

func NewChefController(svc *services.ChefService) *ChefController {
	return &ChefController{Service: svc}
}

// POST /add-chef → create or update a chef in both stores
func (ctl *ChefController) AddChef(c *gin.Context) {
	var req entity.ChefUser
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	if err := ctl.Service.Upsert(c.Request.Context(), req.Email, req.Name, req.Password, enabled); err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Chef %s saved successfully.", req.Email),
	})
}

// DELETE /delete-chef/:email
func (ctl *ChefController) DeleteChef(c *gin.Context) {
	email := c.Param("email")

	removed, err := ctl.Service.Delete(c.Request.Context(), email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "No such chef found in database."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %s from database and auth.", email),
	})
}

// GET /chef-users
func (ctl *ChefController) ListChefs(c *gin.Context) {
	users, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
