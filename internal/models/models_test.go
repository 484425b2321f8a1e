package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	u := User{GroupID: "g1", Name: "  Ana ", Email: " Ana@Acme.TEST "}
	require.NoError(t, u.Validate())
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@acme.test", u.Email)
	assert.Equal(t, RoleUser, u.Role)

	cases := map[string]User{
		"name":  {GroupID: "g1", Email: "a@b.c"},
		"email": {GroupID: "g1", Name: "Ana", Email: "nope"},
		"role":  {GroupID: "g1", Name: "Ana", Email: "a@b.c", Role: "owner"},
		"group": {Name: "Ana", Email: "a@b.c"},
	}
	for name, u := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, u.Validate())
		})
	}
}

func TestUserJSONHidesPassword(t *testing.T) {
	b, err := json.Marshal(User{ID: "u1", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}

func TestMovementValidate(t *testing.T) {
	valid := func() Movement {
		return Movement{GroupID: "g1", UserID: "u1", Date: "2024-01-31", Type: MovementIncome, Concept: " Salary ", Amount: 0}
	}
	m := valid()
	require.NoError(t, m.Validate())
	assert.Equal(t, "Salary", m.Concept)

	for name, mutate := range map[string]func(*Movement){
		"missing user":   func(m *Movement) { m.UserID = "" },
		"bad date":       func(m *Movement) { m.Date = "2024-02-30" },
		"loose date":     func(m *Movement) { m.Date = "2024-1-5" },
		"unknown type":   func(m *Movement) { m.Type = "transfer" },
		"blank concept":  func(m *Movement) { m.Concept = "   " },
		"negative value": func(m *Movement) { m.Amount = -0.01 },
	} {
		t.Run(name, func(t *testing.T) {
			m := valid()
			mutate(&m)
			assert.Error(t, m.Validate())
		})
	}
}

func TestMovementPatchApply(t *testing.T) {
	m := Movement{ID: "m1", Date: "2024-01-01", Type: MovementIncome, Concept: "a", Amount: 1}
	amount := 2.5
	typ := MovementExpense
	MovementPatch{Type: &typ, Amount: &amount}.Apply(&m)

	assert.Equal(t, "2024-01-01", m.Date)
	assert.Equal(t, MovementExpense, m.Type)
	assert.Equal(t, "a", m.Concept)
	assert.Equal(t, 2.5, m.Amount)
}
