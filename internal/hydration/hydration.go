package hydration

import (
	"time"

	"github.com/google/uuid"
)

type Log struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	AmountMl  int       `json:"amount_ml" db:"amount_ml"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DailyTotal is one day of summed water intake. Date is the local calendar
// day formatted as 2006-01-02.
type DailyTotal struct {
	Date     string `json:"date"`
	AmountMl int    `json:"amount_ml"`
}
