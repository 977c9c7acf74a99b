package report

import (
	"context"
	"sync"
	"time"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ leadSource = &leadSourceMock{}

type leadSourceMock struct {
	ListInRangeFunc  func(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Lead, error)
	CountFunc        func(ctx context.Context) (int, error)
	SummaryFunc      func(ctx context.Context) ([]domain.LeadStatusSummary, error)
	CountByMonthFunc func(ctx context.Context, since time.Time) ([]domain.Bucket, error)

	calls struct {
		ListInRange []struct {
			Ctx   context.Context
			Rng   domain.DateRange
			Limit int
		}
		Count []struct {
			Ctx context.Context
		}
		Summary []struct {
			Ctx context.Context
		}
		CountByMonth []struct {
			Ctx   context.Context
			Since time.Time
		}
	}
	lockListInRange  sync.RWMutex
	lockCount        sync.RWMutex
	lockSummary      sync.RWMutex
	lockCountByMonth sync.RWMutex
}

func (mock *leadSourceMock) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Lead, error) {
	if mock.ListInRangeFunc == nil {
		panic("leadSourceMock.ListInRangeFunc: method is nil but leadSource.ListInRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Rng   domain.DateRange
		Limit int
	}{
		Ctx:   ctx,
		Rng:   rng,
		Limit: limit,
	}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, callInfo)
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, rng, limit)
}

func (mock *leadSourceMock) ListInRangeCalls() []struct {
	Ctx   context.Context
	Rng   domain.DateRange
	Limit int
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *leadSourceMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("leadSourceMock.CountFunc: method is nil but leadSource.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *leadSourceMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *leadSourceMock) Summary(ctx context.Context) ([]domain.LeadStatusSummary, error) {
	if mock.SummaryFunc == nil {
		panic("leadSourceMock.SummaryFunc: method is nil but leadSource.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx)
}

func (mock *leadSourceMock) SummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *leadSourceMock) CountByMonth(ctx context.Context, since time.Time) ([]domain.Bucket, error) {
	if mock.CountByMonthFunc == nil {
		panic("leadSourceMock.CountByMonthFunc: method is nil but leadSource.CountByMonth was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{
		Ctx:   ctx,
		Since: since,
	}
	mock.lockCountByMonth.Lock()
	mock.calls.CountByMonth = append(mock.calls.CountByMonth, callInfo)
	mock.lockCountByMonth.Unlock()
	return mock.CountByMonthFunc(ctx, since)
}

func (mock *leadSourceMock) CountByMonthCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	mock.lockCountByMonth.RLock()
	calls := mock.calls.CountByMonth
	mock.lockCountByMonth.RUnlock()
	return calls
}
