package model

import "database/sql"

const (
	TableName  = "User"
	EntityName = "user"

	FieldUserID      = "UserID"
	FieldUsername    = "Username"
	FieldEmail       = "Email"
	FieldNationality = "Nationality"
)

type User struct {
	UserID      int64          `db:"UserID"      auto:"true"`
	Username    string         `db:"Username"`
	Email       sql.NullString `db:"Email"`
	Nationality sql.NullString `db:"Nationality"`
}
