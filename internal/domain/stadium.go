package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stadium represents a rentable sport venue
type Stadium struct {
	ID          int64
	OwnerID     *int64
	Name        string
	Description *string
	Location    string
	District    string
	Price       decimal.Decimal // hourly price
	Capacity    int
	SportType   string
	IsActive    bool
	CreatedAt   time.Time
}

// StadiumFilter filters the stadium catalog
type StadiumFilter struct {
	District   *string
	SportType  *string
	ActiveOnly bool
}

// User is the subset of account data the booking service reads
type User struct {
	ID        int64
	Fullname  string
	Email     string
	Phone     *string
	CreatedAt time.Time
}
