package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name   string `json:"name" example:"Groceries"`         // Name of the category
	Code   string `json:"code" example:"groceries"`         // URL-safe code. Derived from the name when empty
	Active *bool  `json:"active" example:"true" default:"true"` // Is the category selectable for new transactions?
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	active := true
	if editable.Active != nil {
		active = *editable.Active
	}

	return models.Category{
		Name:   editable.Name,
		Code:   editable.Code,
		Active: active,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions for this category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	Name   string        `json:"name" example:"Groceries"`
	Code   string        `json:"code" example:"groceries"`
	Active bool          `json:"active" example:"true"`
	Links  CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.ContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Code:         model.Code,
		Active:       model.Active,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The Category data, if creation was successful
}

type CategoryQueryFilter struct {
	Active *bool `form:"active"` // Is the category selectable for new transactions? Defaults to true
}
