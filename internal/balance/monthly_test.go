package balance

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/groupledger/internal/models"
)

func mv(date string, typ models.MovementType, amount float64, userID string) models.Movement {
	return models.Movement{Date: date, Type: typ, Amount: amount, UserID: userID, GroupID: "g1"}
}

func TestComputeMonthly_ExcludesOtherMonths(t *testing.T) {
	movements := []models.Movement{
		mv("2024-03-05", models.MovementIncome, 1000, "u1"),
		mv("2024-03-10", models.MovementExpense, 300, "u1"),
		mv("2024-04-01", models.MovementIncome, 50, "u1"),
	}
	users := []models.User{{ID: "u1", Name: "Ana"}}

	got := ComputeMonthly(movements, users, 2024, 3)

	assert.Equal(t, models.MonthlyBalance{
		TotalIncome:   1000,
		TotalExpenses: 300,
		Balance:       700,
		ByUser: []models.UserBalance{
			{UserID: "u1", UserName: "Ana", Income: 1000, Expenses: 300, Balance: 700},
		},
	}, got)
}

func TestComputeMonthly_NoMovements(t *testing.T) {
	users := []models.User{{ID: "u1", Name: "Ana"}}

	got := ComputeMonthly(nil, users, 2023, 11)

	assert.Equal(t, models.MonthlyBalance{
		ByUser: []models.UserBalance{{UserID: "u1", UserName: "Ana"}},
	}, got)
}

func TestComputeMonthly_NoUsers(t *testing.T) {
	movements := []models.Movement{mv("2024-01-15", models.MovementIncome, 20, "u1")}

	got := ComputeMonthly(movements, nil, 2024, 1)

	assert.Equal(t, 20.0, got.TotalIncome)
	assert.NotNil(t, got.ByUser)
	assert.Empty(t, got.ByUser)
}

func TestComputeMonthly_MonthEdges(t *testing.T) {
	movements := []models.Movement{
		mv("2023-12-31", models.MovementIncome, 1, "u1"),
		mv("2024-01-01", models.MovementIncome, 10, "u1"),
		mv("2024-01-31", models.MovementIncome, 100, "u1"),
		mv("2024-02-01", models.MovementIncome, 1000, "u1"),
	}

	jan := ComputeMonthly(movements, nil, 2024, 1)
	feb := ComputeMonthly(movements, nil, 2024, 2)

	assert.Equal(t, 110.0, jan.TotalIncome)
	assert.Equal(t, 1000.0, feb.TotalIncome)
}

func TestComputeMonthly_UnknownTypeIgnored(t *testing.T) {
	movements := []models.Movement{
		mv("2024-05-02", models.MovementIncome, 10, "u1"),
		mv("2024-05-03", models.MovementType("transfer"), 99, "u1"),
		mv("2024-05-04", models.MovementType(""), 42, "u1"),
	}
	users := []models.User{{ID: "u1", Name: "Ana"}}

	got := ComputeMonthly(movements, users, 2024, 5)

	assert.Equal(t, 10.0, got.TotalIncome)
	assert.Zero(t, got.TotalExpenses)
	assert.Equal(t, 10.0, got.ByUser[0].Balance)
}

func TestComputeMonthly_MalformedDatesDoNotPanic(t *testing.T) {
	movements := []models.Movement{
		mv("", models.MovementIncome, 1, "u1"),
		mv("2024-5-03", models.MovementIncome, 2, "u1"),
		mv("garbage", models.MovementExpense, 4, "u1"),
		mv("2024-05", models.MovementIncome, 8, "u1"),
		mv("2024-05-07", models.MovementIncome, 16, "u1"),
	}

	got := ComputeMonthly(movements, nil, 2024, 5)

	// "2024-05" sorts before the lower bound; "2024-5-03" sorts after the upper one.
	assert.Equal(t, 16.0, got.TotalIncome)
	assert.Zero(t, got.TotalExpenses)
}

func TestComputeMonthly_UnknownUserCountsOnlyInTotals(t *testing.T) {
	movements := []models.Movement{
		mv("2024-06-01", models.MovementIncome, 50, "u1"),
		mv("2024-06-02", models.MovementExpense, 20, "ghost"),
	}
	users := []models.User{{ID: "u1", Name: "Ana"}, {ID: "u2", Name: "Luis"}}

	got := ComputeMonthly(movements, users, 2024, 6)

	assert.Equal(t, 50.0, got.TotalIncome)
	assert.Equal(t, 20.0, got.TotalExpenses)
	assert.Equal(t, 30.0, got.Balance)
	require.Len(t, got.ByUser, 2)
	assert.Equal(t, models.UserBalance{UserID: "u1", UserName: "Ana", Income: 50, Balance: 50}, got.ByUser[0])
	assert.Equal(t, models.UserBalance{UserID: "u2", UserName: "Luis"}, got.ByUser[1])
}

func TestComputeMonthly_PreservesUserOrder(t *testing.T) {
	users := []models.User{{ID: "c", Name: "C"}, {ID: "a", Name: "A"}, {ID: "b", Name: "B"}}

	got := ComputeMonthly(nil, users, 2024, 1)

	ids := make([]string, 0, len(got.ByUser))
	for _, ub := range got.ByUser {
		ids = append(ids, ub.UserID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestComputeMonthly_DoesNotMutateInput(t *testing.T) {
	movements := []models.Movement{
		mv("2024-03-05", models.MovementIncome, 1000, "u1"),
		mv("2024-04-05", models.MovementExpense, 5, "u1"),
	}
	snapshot := append([]models.Movement(nil), movements...)

	_ = ComputeMonthly(movements, []models.User{{ID: "u1"}}, 2024, 3)

	assert.Equal(t, snapshot, movements)
}

func randomMovements(r *rand.Rand, n int, userIDs []string) []models.Movement {
	types := []models.MovementType{models.MovementIncome, models.MovementExpense, "other"}
	out := make([]models.Movement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Movement{
			ID:     fmt.Sprintf("m%d", i),
			UserID: userIDs[r.Intn(len(userIDs))],
			Date:   fmt.Sprintf("%04d-%02d-%02d", 2023+r.Intn(2), 1+r.Intn(12), 1+r.Intn(31)),
			Type:   types[r.Intn(len(types))],
			Amount: float64(r.Intn(100000)) / 100,
		})
	}
	return out
}

func TestComputeMonthly_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	users := []models.User{{ID: "u1", Name: "Ana"}, {ID: "u2", Name: "Luis"}, {ID: "u3", Name: "Eva"}}

	for i := 0; i < 200; i++ {
		movements := randomMovements(r, r.Intn(60), []string{"u1", "u2", "u3"})
		year, month := 2023+r.Intn(2), 1+r.Intn(12)

		got := ComputeMonthly(movements, users, year, month)

		assert.Equal(t, got.TotalIncome-got.TotalExpenses, got.Balance)
		var income, expenses float64
		for _, ub := range got.ByUser {
			assert.Equal(t, ub.Income-ub.Expenses, ub.Balance)
			income += ub.Income
			expenses += ub.Expenses
		}
		// every movement belongs to a listed user, so the per-user split closes
		assert.InDelta(t, got.TotalIncome, income, 1e-6)
		assert.InDelta(t, got.TotalExpenses, expenses, 1e-6)

		assert.Equal(t, got, ComputeMonthly(movements, users, year, month))
	}
}

func TestComputeMonthly_OnlyMonthMovementsContribute(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	movements := randomMovements(r, 300, []string{"u1"})
	p := Period{Year: 2024, Month: 2}
	lower, upper := p.Bounds()

	var want float64
	for _, m := range movements {
		if m.Type == models.MovementIncome && m.Date >= lower && m.Date <= upper {
			want += m.Amount
		}
	}

	got := ComputeMonthly(movements, nil, p.Year, p.Month)

	assert.Equal(t, want, got.TotalIncome)
}
