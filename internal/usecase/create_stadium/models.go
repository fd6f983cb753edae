package create_stadium

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на регистрацию стадиона
type Request struct {
	OwnerID     *int64
	Name        string
	Description *string
	Location    string
	District    string
	Price       *decimal.Decimal // цена за час
	Capacity    int
	SportType   string
}

// Response зарегистрированный стадион
type Response struct {
	ID          int64
	OwnerID     *int64
	Name        string
	Description *string
	Location    string
	District    string
	Price       decimal.Decimal
	Capacity    int
	SportType   string
	IsActive    bool
	CreatedAt   time.Time
}
