// Package types provides type definitions for structured data used throughout the outreach system.
package types

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// addressPattern is the simple address-format check applied to every recipient
// before a send is attempted. Deliberately loose; the SMTP server has the final say.
var addressPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[A-Za-z]{2,}$`)

// Recipient is one row of the recipient list: who to contact and the two
// fields interpolated into the message template.
type Recipient struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	Company   string `json:"company" validate:"required"`
}

// Validate validates the Recipient using the validator.
func (r *Recipient) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// IsValidAddress reports whether email passes the address-format check.
func IsValidAddress(email string) bool {
	return addressPattern.MatchString(email)
}
