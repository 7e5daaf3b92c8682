package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleError logs the failure and writes the JSON error envelope. Callers
// never see a raw stack trace.
func HandleError(c *gin.Context, status int, message string, err error) {
	if value, ok := c.Get("logger"); ok {
		logger := value.(*zerolog.Logger)
		logger.Error().
			Int("code", status).
			Err(err).
			Msg(message)
	}

	c.JSON(status, gin.H{"error": message})
}
