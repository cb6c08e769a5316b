package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planifevent/utils"
)

// Authenticate verifies the bearer token and stores the caller
// identity on the context for handlers downstream.
func Authenticate(c *gin.Context) {
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	ident, err := utils.VerifyToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	c.Set("userId", ident.UserID)
	c.Set("username", ident.Username)
	c.Set("isProfessional", ident.IsProfessional)
	c.Next()
}
