package stores

import "github.com/gin-gonic/gin"

const UsernameKey = "username"

func SetUsername(c *gin.Context, username string) {
	c.Set(UsernameKey, username)
}

// GetUsername returns the logged in admin, or "" for visitors.
func GetUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

func IsLoggedIn(c *gin.Context) bool {
	return GetUsername(c) != ""
}
