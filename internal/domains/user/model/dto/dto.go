package dto

import (
	"database/sql"
	"strings"
	"travel/internal/domains/user/model"
)

type CreateUserRequest struct {
	Username    string `json:"username"    validate:"notblank,max=50"`
	Email       string `json:"email"       validate:"omitempty,email,max=100"`
	Nationality string `json:"nationality" validate:"omitempty,max=50"`
}

func (r *CreateUserRequest) ToModel() model.User {
	return model.User{
		Username:    strings.TrimSpace(r.Username),
		Email:       nullString(r.Email),
		Nationality: nullString(r.Nationality),
	}
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)

	return sql.NullString{String: value, Valid: value != ""}
}

type CreateUserResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// UserName is one entry of the user picker.
type UserName struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (r *UserName) FromModel(user model.User) {
	r.UserID = user.UserID
	r.Username = user.Username
}

type GetUserNamesResponse struct {
	Users []UserName `json:"users"`
}

func (r *GetUserNamesResponse) FromModels(users []model.User) {
	r.Users = make([]UserName, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}
