package dto

import (
	"time"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// UserCreateRequest is the accepted user payload. The owner comes from the
// authenticated customer, never from the body.
type UserCreateRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// Model converts the payload into a draft entity.
func (r UserCreateRequest) Model() model.User {
	return model.User{Firstname: r.Firstname, Lastname: r.Lastname, Email: r.Email}
}

// UserListItem is the "userList" group.
type UserListItem struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// UserInfo is the "infos" group.
type UserInfo struct {
	ID         int64     `json:"id"`
	Firstname  string    `json:"firstname"`
	Lastname   string    `json:"lastname"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID int64     `json:"customerId"`
}

// UserCreated is the "post:user" group.
type UserCreated struct {
	Firstname  string    `json:"firstname"`
	Lastname   string    `json:"lastname"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID int64     `json:"customerId"`
}

func NewUserList(users []model.User) []UserListItem {
	out := make([]UserListItem, 0, len(users))
	for _, u := range users {
		out = append(out, UserListItem{ID: u.ID, Firstname: u.Firstname, Lastname: u.Lastname, Email: u.Email})
	}
	return out
}

func NewUserInfo(u *model.User) UserInfo {
	return UserInfo{
		ID:         u.ID,
		Firstname:  u.Firstname,
		Lastname:   u.Lastname,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		CustomerID: u.CustomerID,
	}
}

func NewUserCreated(u *model.User) UserCreated {
	return UserCreated{
		Firstname:  u.Firstname,
		Lastname:   u.Lastname,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		CustomerID: u.CustomerID,
	}
}
