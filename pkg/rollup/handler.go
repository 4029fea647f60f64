package rollup

import (
	"context"
	"net/http"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/gin-gonic/gin"
)

func NewHandler(rollupService rollupService) Handler {
	return Handler{rollupService}
}

type Handler struct {
	rollupService rollupService
}

type rollupService interface {
	Totals(ctx context.Context) (*Totals, error)
	ByCategory(ctx context.Context) ([]CategoryRollup, error)
	ByDate(ctx context.Context, date time.Time) (*DateRollup, error)
}

// Totals across all events
func (h Handler) Totals(c *gin.Context) {
	// swagger:route GET /rollup/totals totals
	//
	// Budget totals
	//
	// Total budget and total spending summed across all events
	//
	// responses:
	//   200: Totals
	totals, err := h.rollupService.Totals(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// ByCategory rollup
func (h Handler) ByCategory(c *gin.Context) {
	// swagger:route GET /rollup/categories byCategory
	//
	// Rollup by category
	//
	// Budgeted, spent, remaining and utilization per budget category
	//
	// responses:
	//   200: []CategoryRollup
	rollups, err := h.rollupService.ByCategory(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, rollups)
}

// ByDate rollup
func (h Handler) ByDate(c *gin.Context) {
	// swagger:route GET /rollup/date/{date} byDate
	//
	// Rollup by date
	//
	// Budget and spending of the events on one calendar date
	//
	// responses:
	//   200: DateRollup
	//   400: Error
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		_ = c.Error(errdef.NewValidation("failed to parse date %q: %v", c.Param("date"), err))
		return
	}

	rollup, err := h.rollupService.ByDate(c.Request.Context(), date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, rollup)
}
