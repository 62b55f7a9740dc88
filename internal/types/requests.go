package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the member login exchange.
type LoginRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Pin      string `json:"pin" validate:"required,min=1"`
	Location string `json:"location,omitempty"`
}

// ApplicationInput represents the fields a member may supply when creating
// an application. Company and role are required; everything else defaults
// server-side.
type ApplicationInput struct {
	Company  string `json:"company" validate:"required,min=1"`
	Role     string `json:"role" validate:"required,min=1"`
	Link     string `json:"link,omitempty" validate:"omitempty,url"`
	Date     string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=wishlist applied interview offer rejected"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// AdminUserInput represents an admin create-or-update of a managed member.
// The pin is required server-side when the member does not exist yet.
type AdminUserInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Location string `json:"location,omitempty"`
	Pin      string `json:"pin,omitempty"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ApplicationInput using the validator.
func (r *ApplicationInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AdminUserInput using the validator.
func (r *AdminUserInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalize trims surrounding whitespace from every user-entered field.
func (r *LoginRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Pin = strings.TrimSpace(r.Pin)
	r.Location = strings.TrimSpace(r.Location)
}

// Normalize trims surrounding whitespace from every user-entered field.
func (r *ApplicationInput) Normalize() {
	r.Company = strings.TrimSpace(r.Company)
	r.Role = strings.TrimSpace(r.Role)
	r.Link = strings.TrimSpace(r.Link)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
	r.Location = strings.TrimSpace(r.Location)
	r.Notes = strings.TrimSpace(r.Notes)
}

// Normalize trims surrounding whitespace from every user-entered field.
func (r *AdminUserInput) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Pin = strings.TrimSpace(r.Pin)
}
