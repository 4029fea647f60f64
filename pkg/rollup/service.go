package rollup

import (
	"context"
	"sort"
	"time"

	"github.com/clubops/club-manager/pkg/model"
)

func NewService(repository rollupRepository) *Service {
	return &Service{repository: repository}
}

type rollupRepository interface {
	findAll(ctx context.Context) ([]*model.Event, error)
	findByDate(ctx context.Context, date time.Time) ([]*model.Event, error)
}

type Service struct {
	repository rollupRepository
}

// Totals summed across all events.
// swagger:model
type Totals struct {
	TotalBudget   float64 `json:"totalBudget"`
	TotalSpending float64 `json:"totalSpending"`
}

// CategoryRollup aggregates the events sharing a budget category.
// Utilization is the raw spent/budgeted ratio and may exceed 1 which signals
// overspend; Percent is clamped to [0, 100] for display.
// swagger:model
type CategoryRollup struct {
	Category    string  `json:"category"`
	Budgeted    float64 `json:"budgeted"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	Utilization float64 `json:"utilization"`
	Percent     float64 `json:"percent"`
}

// DateRollup aggregates the events occurring on one calendar date.
// swagger:model
type DateRollup struct {
	Date        string  `json:"date"`
	Budget      float64 `json:"budget"`
	Spending    float64 `json:"spending"`
	Utilization float64 `json:"utilization"`
	Percent     float64 `json:"percent"`
}

func (s Service) Totals(ctx context.Context) (*Totals, error) {
	events, err := s.repository.findAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := &Totals{}
	for _, event := range events {
		totals.TotalBudget += event.Budget
		totals.TotalSpending += event.ActualSpending
	}
	return totals, nil
}

// ByCategory aggregates budget and spending per budget category. Events
// without a budget category are left out.
func (s Service) ByCategory(ctx context.Context) ([]CategoryRollup, error) {
	events, err := s.repository.findAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := map[string]*CategoryRollup{}
	for _, event := range events {
		if event.BudgetCategory == "" {
			continue
		}
		category, ok := byCategory[event.BudgetCategory]
		if !ok {
			category = &CategoryRollup{Category: event.BudgetCategory}
			byCategory[event.BudgetCategory] = category
		}
		category.Budgeted += event.Budget
		category.Spent += event.ActualSpending
	}

	rollups := make([]CategoryRollup, 0, len(byCategory))
	for _, category := range byCategory {
		category.Remaining = category.Budgeted - category.Spent
		category.Utilization = utilization(category.Spent, category.Budgeted)
		category.Percent = clampPercent(category.Utilization)
		rollups = append(rollups, *category)
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Category < rollups[j].Category
	})

	return rollups, nil
}

// ByDate sums budget and spending of the events on one calendar date.
func (s Service) ByDate(ctx context.Context, date time.Time) (*DateRollup, error) {
	events, err := s.repository.findByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	rollup := &DateRollup{Date: date.Format("2006-01-02")}
	for _, event := range events {
		rollup.Budget += event.Budget
		rollup.Spending += event.ActualSpending
	}
	rollup.Utilization = utilization(rollup.Spending, rollup.Budget)
	rollup.Percent = clampPercent(rollup.Utilization)

	return rollup, nil
}

func utilization(spent, budgeted float64) float64 {
	if budgeted == 0 {
		return 0
	}
	return spent / budgeted
}

func clampPercent(utilization float64) float64 {
	percent := utilization * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
