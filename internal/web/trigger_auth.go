package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// TriggerAuth validates the HS256 bearer token that external schedulers sign
// their trigger requests with. An empty secret disables the check.
func TriggerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			return
		}

		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" {
			HandleError(c, http.StatusUnauthorized, "Missing trigger token", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}

			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			HandleError(c, http.StatusUnauthorized, "Invalid trigger token", err)
			c.Abort()
		}
	}
}
