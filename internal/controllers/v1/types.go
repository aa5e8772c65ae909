package v1

import (
	"time"

	cs_uuid "github.com/centsible/backend/internal/uuid"
)

type URIID struct {
	ID cs_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2022-07"` // Year and month in YYYY-MM format
}

type QueryDate struct {
	Date time.Time `form:"date" time_format:"2006-01-02" time_utc:"1" example:"2022-07-24"` // Reference date in YYYY-MM-DD format
}

type Pagination struct {
	Page     int   `json:"page" example:"1"`      // The page returned in this response
	PageSize int   `json:"pageSize" example:"20"` // The maximum number of resources per page
	Total    int64 `json:"total" example:"827"`   // The total number of resources matching the query
	Pages    int64 `json:"pages" example:"42"`    // The total number of pages
}

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

// pagination clamps the page and pageSize query values to their allowed
// ranges and returns them together with the database offset.
func pagination(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize, (page - 1) * pageSize
}

// pages returns the number of pages needed for count resources.
func pages(count int64, pageSize int) int64 {
	p := count / int64(pageSize)
	if count%int64(pageSize) != 0 {
		p++
	}

	return p
}
