package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logiless/internal/client/logiless"
	"logiless/internal/job"
	"logiless/internal/models"
)

// SyncStateLister is the slice of the warehouse repository the read
// endpoint needs.
type SyncStateLister interface {
	ListSyncStates(ctx context.Context) ([]models.SyncState, error)
}

// SyncHandler exposes the on-demand sync trigger and sync bookkeeping.
type SyncHandler struct {
	Runner    *job.Runner
	Performer job.Performer
	Repo      SyncStateLister
	Logger    *zap.Logger
}

func (h *SyncHandler) Register(r *gin.Engine) {
	group := r.Group("/api")
	group.POST("/sync", h.runSync)
	group.GET("/sync-state", h.listSyncState)
}

func (h *SyncHandler) runSync(c *gin.Context) {
	sinceDate := c.Query("since_date")
	if sinceDate != "" {
		if _, err := logiless.ParseTokyoDate(sinceDate); err != nil {
			Error(c, http.StatusBadRequest, "since_date must be YYYY-MM-DD")
			return
		}
	}

	result, err := h.Runner.Run(c.Request.Context(), h.Performer, job.Params{SinceDate: sinceDate})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("manual sync failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error())
		return
	}
	Ok(c, result)
}

func (h *SyncHandler) listSyncState(c *gin.Context) {
	states, err := h.Repo.ListSyncStates(c.Request.Context())
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	Ok(c, states)
}
