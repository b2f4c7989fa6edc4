package models

import (
	"github.com/go-playground/validator/v10"
)

type News struct {
	ID        int64  `db:"id" json:"id"`
	Title     string `db:"title" json:"title" validate:"required"`
	URL       string `db:"url" json:"url" validate:"required"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

func (n *News) Validate() error {
	validate := validator.New()
	return validate.Struct(n)
}
