package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	cs_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the administrative routes for transactions
// with the RouterGroup that is passed. The group must be behind the admin
// middleware.
func RegisterAdminRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/transactions", OptionsAdminTransactions)
		r.GET("/transactions", GetAdminTransactions)
	}

	{
		r.OPTIONS("/transactions/:id", OptionsAdminTransactionDetail)
		r.POST("/transactions/:id/restore", RestoreTransaction)
		r.DELETE("/transactions/:id", PurgeTransaction)
	}
}

type AdminTransactionQueryFilter struct {
	Deleted  *bool        `form:"deleted"`  // Only deleted (true) or only alive (false) transactions. Defaults to both.
	UserID   cs_uuid.UUID `form:"user"`     // ID of the owning user
	Page     int          `form:"page"`     // The page of transactions to return. Defaults to 1.
	PageSize int          `form:"pageSize"` // Number of transactions per page. Defaults to 20, at most 50.
}

// getAnyTransaction returns the transaction with the ID in the URI, deleted
// or not, regardless of the owner.
func getAnyTransaction(c *gin.Context) (models.Transaction, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err = models.DB.Unscoped().First(&transaction, uri.ID).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Admin
// @Success		204
// @Router			/v1/admin/transactions [options]
// @Security		Bearer
func OptionsAdminTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Admin
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/admin/transactions/{id} [options]
// @Security		Bearer
func OptionsAdminTransactionDetail(c *gin.Context) {
	_, err := getAnyTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPostDelete(c)
}

// @Summary		Get all transactions
// @Description	Returns the transactions of all users, deleted ones included
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/admin/transactions [get]
// @Param			deleted		query	bool	false	"Only deleted (true) or only alive (false) transactions. Defaults to both."
// @Param			user		query	string	false	"Filter by ID of the owning user"
// @Param			page		query	int		false	"The page of transactions to return. Defaults to 1."
// @Param			pageSize	query	int		false	"Number of transactions per page. Defaults to 20, at most 50."
// @Security		Bearer
func GetAdminTransactions(c *gin.Context) {
	var filter AdminTransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Unscoped().
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if filter.Deleted != nil {
		if *filter.Deleted {
			q = q.Where("transactions.deleted_at IS NOT NULL")
		} else {
			q = q.Where("transactions.deleted_at IS NULL")
		}
	}

	if filter.UserID != cs_uuid.Nil {
		q = q.Where("transactions.user_id = ?", filter.UserID.UUID)
	}

	var count int64
	err := q.Model(&models.Transaction{}).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	page, pageSize, offset := pagination(filter.Page, filter.PageSize)
	q = q.Offset(offset).Limit(pageSize)

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    count,
			Pages:    pages(count, pageSize),
		},
	})
}

// @Summary		Restore transaction
// @Description	Removes the deletion marker from a transaction so that it is visible to its owner again
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/admin/transactions/{id}/restore [post]
// @Security		Bearer
func RestoreTransaction(c *gin.Context) {
	transaction, err := getAnyTransaction(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Unscoped().Model(&transaction).Update("deleted_at", nil).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction.DeletedAt = nil
	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Purge transaction
// @Description	Permanently deletes a transaction, whether it carries a deletion marker or not
// @Tags			Admin
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/admin/transactions/{id} [delete]
// @Security		Bearer
func PurgeTransaction(c *gin.Context) {
	transaction, err := getAnyTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Unscoped().Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
