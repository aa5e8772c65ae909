package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	cs_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-21T00:00:00Z"` // Date of the transaction. Time of day is ignored

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Type       models.TransactionType `json:"type" example:"EXPENSE" enums:"INCOME,EXPENSE"`              // Direction of the money movement
	CategoryID uuid.UUID              `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	Note       string                 `json:"note" example:"Lunch" default:""`                           // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:       editable.Date,
		Amount:     editable.Amount,
		Type:       editable.Type,
		CategoryID: editable.CategoryID,
		Note:       editable.Note,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`     // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category of the transaction
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	UserID uuid.UUID        `json:"userId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the owning user
	Links  TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:       model.Date,
			Amount:     model.Amount,
			Type:       model.Type,
			CategoryID: model.CategoryID,
			Note:       model.Note,
		},
		UserID: model.UserID,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date       time.Time              `form:"date" time_format:"2006-01-02" filterField:"false"`      // Exact date
	FromDate   time.Time              `form:"fromDate" time_format:"2006-01-02" filterField:"false"`  // From this date, inclusive
	UntilDate  time.Time              `form:"untilDate" time_format:"2006-01-02" filterField:"false"` // Until this date, inclusive
	Type       models.TransactionType `form:"type" filterField:"false"`      // Type of the transaction
	CategoryID cs_uuid.UUID           `form:"category"`                      // ID of the category
	Note       string                 `form:"note" filterField:"false"`      // Note contains this string
	Page       int                    `form:"page" filterField:"false"`      // The page of transactions to return. Defaults to 1.
	PageSize   int                    `form:"pageSize" filterField:"false"`  // Number of transactions per page. Defaults to 20, at most 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the string, type and date fields since they are
	// handled in the controller function
	return models.Transaction{
		CategoryID: f.CategoryID.UUID,
	}
}
