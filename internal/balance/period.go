package balance

import (
	"fmt"
	"time"
)

// Period is a calendar month; Month is 1-indexed.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

func (p Period) Valid() bool { return p.Month >= 1 && p.Month <= 12 }

func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Bounds returns the inclusive string range used to select movement dates.
// The upper bound always ends in "-31": it only has to sort after every real
// day of the month, it is never shown to anyone.
func (p Period) Bounds() (lower, upper string) {
	prefix := fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	return prefix + "-01", prefix + "-31"
}

func (p Period) String() string { return fmt.Sprintf("%04d-%02d", p.Year, p.Month) }
