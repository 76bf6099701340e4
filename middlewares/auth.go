package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/entity"
	"github.com/vaishnavisherala/RestaurantSystem/utils"
	"gorm.io/gorm"
)

// AuthMiddleware checks the bearer access token and loads the acting user
// into the request context.
func AuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil || claims.TokenType != utils.TokenAccess {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		var user entity.User
		if err := db.Where("username = ?", claims.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("username", user.Username)
		c.Set("isSuperuser", user.IsSuperuser)

		c.Next()
	}
}
