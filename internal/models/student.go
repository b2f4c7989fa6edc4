package models

type Student struct {
	ID         int64  `db:"id" json:"id"`
	Login      string `db:"login" json:"login"`
	Password   string `db:"password" json:"-"` // bcrypt hash, never serialized
	LastName   string `db:"last_name" json:"lastName"`
	FirstName  string `db:"first_name" json:"firstName"`
	MiddleName string `db:"middle_name" json:"middleName"`
}
