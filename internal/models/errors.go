package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUsernameTaken = errors.New("this username is already taken")
	ErrEmailTaken    = errors.New("this email is already in use")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryCodeNotUnique = errors.New("the category code must be unique")
	ErrCategoryReferenced    = errors.New("the category cannot be deleted while transactions reference it")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be greater than zero")
	ErrTransactionDateFuture        = errors.New("the transaction date must not be in the future")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be INCOME or EXPENSE")
)
