package web

import (
	"net/http"

	"bitbucket.org/planbgroup/booking-notifier/internal/config"
	"bitbucket.org/planbgroup/booking-notifier/internal/notifier"
	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
	"bitbucket.org/planbgroup/booking-notifier/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterRoutes(
	router *gin.Engine,
	service *notifier.Service,
	cfg *config.Config,
) {
	group := router.Group("/api")

	// The webhook authenticates itself through the signed booking lookup;
	// only the timer-driven endpoint carries a trigger token.
	group.POST("/booking-events",
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			var event schema.BookingEvent
			if err := ctx.ShouldBindJSON(&event); err != nil {
				HandleError(ctx, http.StatusBadRequest, "Failed to bind booking event", err)
				return
			}

			booking, err := service.HandleBookingEvent(ctx.Request.Context(), event, logger)
			if err != nil {
				HandleError(ctx, http.StatusInternalServerError, err.Error(), err)
				return
			}

			ctx.JSON(http.StatusOK, gin.H{
				"message": "Booking received successfully",
				"booking": booking,
			})
		},
	)

	group.POST("/reminder-scan",
		TriggerAuth(cfg.TriggerSecret),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("reminder-scan")

			summary, err := service.RunReminderScan(ctx.Request.Context(), logger)
			if err != nil {
				HandleError(ctx, http.StatusInternalServerError, err.Error(), err)
				return
			}

			ctx.JSON(http.StatusOK, gin.H{
				"message": "Success",
				"summary": summary,
			})

			slowLog.Stop("reminder-scan")
		},
	)
}
