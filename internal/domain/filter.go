package domain

import (
	"fmt"
	"math"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (Page-1)*Limit within int for any valid Limit.
	MaxPage = math.MaxInt / MaxLimit
)

// FlashcardFilter contains pagination and ordering for flashcard listings.
type FlashcardFilter struct {
	Page   int
	Limit  int
	SortBy FlashcardSortField
	Order  SortOrder
}

// Offset returns the number of rows to skip.
func (f FlashcardFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// WithDefaults fills zero values with the listing defaults.
func (f FlashcardFilter) WithDefaults() FlashcardFilter {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.SortBy == "" {
		f.SortBy = SortByCreatedAt
	}
	if f.Order == "" {
		f.Order = SortDesc
	}
	return f
}

// Validate checks bounds after defaults were applied.
func (f FlashcardFilter) Validate() error {
	var errs FieldErrors
	if f.Page < 1 || f.Page > MaxPage {
		errs.Add("page", fmt.Sprintf("must be between 1 and %d", MaxPage))
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		errs.Add("limit", "must be between 1 and 100")
	}
	if !f.SortBy.IsValid() {
		errs.Add("sort", "must be one of created_at, updated_at, front")
	}
	if !f.Order.IsValid() {
		errs.Add("order", "must be asc or desc")
	}
	return errs.Err()
}

// FlashcardPage is one page of a listing plus the owner-scoped total.
type FlashcardPage struct {
	Items []Flashcard
	Page  int
	Limit int
	Total int
}
