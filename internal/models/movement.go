package models

import (
	"errors"
	"strings"
	"time"
)

type MovementType string

const (
	MovementIncome  MovementType = "income"
	MovementExpense MovementType = "expense"
)

func (t MovementType) Valid() bool { return t == MovementIncome || t == MovementExpense }

// DateLayout is the calendar date format movements are recorded with.
const DateLayout = "2006-01-02"

type Movement struct {
	ID        string       `json:"id"`
	GroupID   string       `json:"group_id"`
	UserID    string       `json:"user_id"`
	Date      string       `json:"date"`
	Type      MovementType `json:"type"`
	Concept   string       `json:"concept"`
	Amount    float64      `json:"amount"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

// MovementPatch holds the fields of a partial update; nil means unchanged.
type MovementPatch struct {
	Date    *string       `json:"date,omitempty"`
	Type    *MovementType `json:"type,omitempty"`
	Concept *string       `json:"concept,omitempty"`
	Amount  *float64      `json:"amount,omitempty"`
}

func (p MovementPatch) Apply(m *Movement) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Concept != nil {
		m.Concept = *p.Concept
	}
	if p.Amount != nil {
		m.Amount = *p.Amount
	}
}

func (m *Movement) Validate() error {
	m.Concept = strings.TrimSpace(m.Concept)
	if m.GroupID == "" || m.UserID == "" {
		return errors.New("group and user are required")
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !m.Type.Valid() {
		return errors.New("type must be income or expense")
	}
	if m.Concept == "" {
		return errors.New("concept is required")
	}
	if m.Amount < 0 {
		return errors.New("amount must be >= 0")
	}
	return nil
}
