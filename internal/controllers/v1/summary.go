package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for the month-to-date summary
// with the RouterGroup that is passed. The group must be behind the
// authentication middleware.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// RegisterMonthRoutes registers the routes for monthly reports with
// the RouterGroup that is passed. The group must be behind the
// authentication middleware.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
// @Security		Bearer
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/months [options]
// @Security		Bearer
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month-to-date summary
// @Description	Returns totals and category breakdowns from the start of the month of the reference date up to and including it, with the spending trend against the previous month
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
// @Param			date	query	string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Security		Bearer
func GetSummary(c *gin.Context) {
	var query QueryDate
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	reference := query.Date
	if reference.IsZero() {
		reference = time.Now().In(time.UTC)
	}

	user := requestUser(c)

	summary, err := models.ComputeSummary(models.DB, user.ID, reference)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	data := newSummary(summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

// @Summary		Get monthly report
// @Description	Returns totals and category breakdowns over one full calendar month
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Router			/v1/months [get]
// @Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the current month."
// @Security		Bearer
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)
	if query.Month.IsZero() {
		month = types.MonthOf(time.Now().In(time.UTC))
	}

	user := requestUser(c)

	report, err := models.ComputeMonth(models.DB, user.ID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(report)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
