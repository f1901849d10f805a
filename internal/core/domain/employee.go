package domain

import (
	"strings"
	"time"
)

// Employee is a single roster entry as known to the client.
type Employee struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	CorporateEmail string `json:"corporateEmail,omitempty"`
	Role           Role   `json:"role,omitempty"`
	UserID         *int64 `json:"userId,omitempty"`
}

// DisplayName joins first and last name with a single space.
func (e Employee) DisplayName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// HasAccount reports whether the employee owns a login account.
func (e Employee) HasAccount() bool {
	return e.UserID != nil
}

// RosterSnapshot is a complete roster together with the time it was fetched.
type RosterSnapshot struct {
	Employees []Employee `json:"employees"`
	FetchedAt time.Time  `json:"fetchedAt"`
}

// NewEmployee is the payload for creating an employee together with its login account.
type NewEmployee struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber,omitempty" validate:"omitempty,e164|numeric"`
	DateOfBirth    string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender,omitempty"`
	CompanyID      string `json:"oryfolksId" validate:"required"`
	Designation    string `json:"designation,omitempty"`
	CorporateEmail string `json:"corporateEmail" validate:"required,email"`
	JoiningDate    string `json:"joiningDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Normalize trims surrounding whitespace from every text field.
func (n *NewEmployee) Normalize() {
	n.FirstName = strings.TrimSpace(n.FirstName)
	n.LastName = strings.TrimSpace(n.LastName)
	n.Email = strings.TrimSpace(n.Email)
	n.PhoneNumber = strings.TrimSpace(n.PhoneNumber)
	n.DateOfBirth = strings.TrimSpace(n.DateOfBirth)
	n.Gender = strings.TrimSpace(n.Gender)
	n.CompanyID = strings.TrimSpace(n.CompanyID)
	n.Designation = strings.TrimSpace(n.Designation)
	n.CorporateEmail = strings.TrimSpace(n.CorporateEmail)
	n.JoiningDate = strings.TrimSpace(n.JoiningDate)
}

// CompleteCorporateEmail appends the company domain when only a mailbox name was given.
func (n *NewEmployee) CompleteCorporateEmail(domain string) {
	if n.CorporateEmail == "" || domain == "" || strings.Contains(n.CorporateEmail, "@") {
		return
	}
	n.CorporateEmail += "@" + domain
}
