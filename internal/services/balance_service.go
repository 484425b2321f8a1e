package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/groupledger/internal/balance"
	"github.com/baharkarakas/groupledger/internal/metrics"
	"github.com/baharkarakas/groupledger/internal/models"
	repo "github.com/baharkarakas/groupledger/internal/repository"
)

type BalanceService struct {
	movements repo.Movements
	users     repo.Users
}

func NewBalanceService(movements repo.Movements, users repo.Users) *BalanceService {
	return &BalanceService{movements: movements, users: users}
}

// MonthlyReport is a MonthlyBalance plus the neighbouring periods for navigation.
type MonthlyReport struct {
	Period balance.Period `json:"period"`
	Prev   balance.Period `json:"prev"`
	Next   balance.Period `json:"next"`
	models.MonthlyBalance
}

func (s *BalanceService) Monthly(ctx context.Context, groupID string, p balance.Period) (MonthlyReport, error) {
	if !p.Valid() {
		return MonthlyReport{}, fmt.Errorf("month %d: %w", p.Month, ErrInvalidPeriod)
	}

	var (
		movements []models.Movement
		users     []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movements, err = s.movements.ListByGroup(gctx, groupID)
		return translate(err, "list movements")
	})
	g.Go(func() error {
		var err error
		users, err = s.users.ListByGroup(gctx, groupID)
		return translate(err, "list users")
	})
	if err := g.Wait(); err != nil {
		return MonthlyReport{}, err
	}

	metrics.BalanceComputations.Inc()
	return MonthlyReport{
		Period:         p,
		Prev:           p.Prev(),
		Next:           p.Next(),
		MonthlyBalance: balance.ComputeMonthly(movements, users, p.Year, p.Month),
	}, nil
}
