package dto

import "time"

type GetOrCreateInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateInput struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type UserOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
