package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planifevent/models"
	"planifevent/utils"
)

// POST /register
func (d *deps) register(c *gin.Context) {
	var req struct {
		Username       string `json:"username" binding:"required"`
		Password       string `json:"password" binding:"required"`
		IsProfessional bool   `json:"isProfessional"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	u := models.User{Username: req.Username, Password: req.Password, IsProfessional: req.IsProfessional}
	if err := d.users.Create(&u); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully.", "user": u})
}

// POST /login
func (d *deps) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	user, err := d.users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsProfessional)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not authenticate user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /profile
func (d *deps) profile(c *gin.Context) {
	user, err := d.users.GetByID(c.GetInt64("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
