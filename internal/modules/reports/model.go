package reports

import "time"

// Entry is one row of sales history. Method is the raw wire value and may
// include legacy "transfer" rows alongside cash and qris.
type Entry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Total  int       `json:"total"`
	Method string    `json:"method"`
	Status string    `json:"status"`
	Items  int       `json:"items"`
}

// Period filters history relative to a reference time.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Summary aggregates the filtered history.
type Summary struct {
	Revenue      int `json:"revenue"`
	Transactions int `json:"transactions"`
	ItemsSold    int `json:"items_sold"`
}
