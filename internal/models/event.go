package models

import (
	"github.com/go-playground/validator/v10"
)

// CalendarEvent keeps its date as an ISO YYYY-MM-DD string, so sorting by
// the date column is already calendar order in both dialects.
type CalendarEvent struct {
	ID    int64  `db:"id" json:"id"`
	Date  string `db:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Title string `db:"title" json:"title" validate:"required"`
}

func (e *CalendarEvent) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}
