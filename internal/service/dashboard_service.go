package service

import (
	"context"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

// Series is a chart-ready pair of parallel key/value slices, oldest first.
type Series struct {
	Keys   []string
	Values []string
}

// DashboardSummary aggregates the owner's position: the combined account
// balance, the week-by-week running balance, and the month-by-month net
// flow.
type DashboardSummary struct {
	TotalBalance decimal.Decimal
	Weekly       Series
	Monthly      Series
}

// dashboardTransactionReader is the storage surface the dashboard needs.
type dashboardTransactionReader interface {
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error)
}

// dashboardAccountReader supplies the owner's combined balance.
type dashboardAccountReader interface {
	TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

// DashboardService computes the owner's dashboard aggregates.
type DashboardService struct {
	accounts     dashboardAccountReader
	transactions dashboardTransactionReader
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(accounts dashboardAccountReader, transactions dashboardTransactionReader) *DashboardService {
	return &DashboardService{accounts: accounts, transactions: transactions}
}

// Summary builds the dashboard for one owner. Transactions arrive newest
// first; the weekly series walks backwards from the present balance, the
// monthly series sums the net flow of each month.
func (s *DashboardService) Summary(ctx context.Context, ownerID uuid.UUID) (*DashboardSummary, error) {
	total, err := s.accounts.TotalBalance(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.transactions.ListAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalBalance: total,
		Weekly:       weeklySeries(total, rows),
		Monthly:      monthlySeries(rows),
	}, nil
}

// weeklySeries emits, per week with activity, the running account total as
// it stood at the end of that week. Starting from the present total, each
// step backwards removes the week's net flow.
func weeklySeries(total decimal.Decimal, rows []*transaction.Transaction) Series {
	var keys, values []string
	running := total

	i := 0
	for i < len(rows) {
		year, week := weekBucket(rows[i].Date)

		sum := decimal.Zero
		j := i
		for j < len(rows) {
			rowYear, rowWeek := weekBucket(rows[j].Date)
			if rowYear != year || rowWeek != week {
				break
			}
			sum = sum.Add(rows[j].Amount)
			j++
		}

		keys = append(keys, strconv.Itoa(week))
		values = append(values, running.String())
		running = running.Sub(sum)
		i = j
	}

	reverseStrings(keys)
	reverseStrings(values)
	return Series{Keys: keys, Values: values}
}

// monthlySeries emits the net flow per month with activity.
func monthlySeries(rows []*transaction.Transaction) Series {
	var keys, values []string

	i := 0
	for i < len(rows) {
		year, month := rows[i].Date.Year(), rows[i].Date.Month()

		sum := decimal.Zero
		j := i
		for j < len(rows) {
			if rows[j].Date.Year() != year || rows[j].Date.Month() != month {
				break
			}
			sum = sum.Add(rows[j].Amount)
			j++
		}

		keys = append(keys, strconv.Itoa(int(month)))
		values = append(values, sum.String())
		i = j
	}

	reverseStrings(keys)
	reverseStrings(values)
	return Series{Keys: keys, Values: values}
}

// weekBucket returns the Monday-first week number of the date, with the
// days before a year's first Monday folded into the last week of the
// previous year.
func weekBucket(date time.Time) (int, int) {
	mondayIndex := (int(date.Weekday()) + 6) % 7
	week := ((date.YearDay() - 1) - mondayIndex + 7) / 7
	if week == 0 {
		return weekBucket(time.Date(date.Year()-1, time.December, 31, 0, 0, 0, 0, date.Location()))
	}
	return date.Year(), week
}

func reverseStrings(values []string) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}
