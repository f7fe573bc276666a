package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const shopIDKey = "shop_id"

// ShopScope resolves the tenant for the admin surface from the
// X-Shop-ID header set by the SaaS frontend. Authentication itself is
// handled upstream; every repository call is still scoped by this id.
func ShopScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader("X-Shop-ID"), 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_SHOP",
					"message": "X-Shop-ID header is required",
				},
			})
			return
		}
		c.Set(shopIDKey, id)
		c.Next()
	}
}

// ShopID returns the tenant id put in context by ShopScope.
func ShopID(c *gin.Context) int64 {
	return c.GetInt64(shopIDKey)
}
