// Package balance computes per-month income/expense summaries for a group.
package balance

import "github.com/baharkarakas/groupledger/internal/models"

type totals struct {
	income   float64
	expenses float64
}

func (t *totals) add(m models.Movement) {
	switch m.Type {
	case models.MovementIncome:
		t.income += m.Amount
	case models.MovementExpense:
		t.expenses += m.Amount
	}
}

// ComputeMonthly summarises the movements dated within year/month, in total
// and for each of users (same order as given). Movements are not assumed to be
// pre-filtered by group or month. Dates are compared as strings, so a malformed
// date just falls outside the range. Movements of users not in the list count
// toward the totals only.
func ComputeMonthly(movements []models.Movement, users []models.User, year, month int) models.MonthlyBalance {
	lower, upper := Period{Year: year, Month: month}.Bounds()

	var all totals
	byUser := make(map[string]*totals, len(users))
	for _, u := range users {
		byUser[u.ID] = &totals{}
	}

	for _, m := range movements {
		if m.Date < lower || m.Date > upper {
			continue
		}
		all.add(m)
		if t, ok := byUser[m.UserID]; ok {
			t.add(m)
		}
	}

	out := models.MonthlyBalance{
		TotalIncome:   all.income,
		TotalExpenses: all.expenses,
		Balance:       all.income - all.expenses,
		ByUser:        make([]models.UserBalance, 0, len(users)),
	}
	for _, u := range users {
		t := byUser[u.ID]
		out.ByUser = append(out.ByUser, models.UserBalance{
			UserID:   u.ID,
			UserName: u.Name,
			Income:   t.income,
			Expenses: t.expenses,
			Balance:  t.income - t.expenses,
		})
	}
	return out
}
