package model

import "time"

// User represents a registered account on the platform.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Plan      string    `json:"plan"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Address   string    `json:"address"`
	TaxID     string    `json:"taxId"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
	UpdatedAt time.Time `json:"updatedAt"`
	Status    string    `json:"status"`
}
