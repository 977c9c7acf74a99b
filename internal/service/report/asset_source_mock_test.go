package report

import (
	"context"
	"sync"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ assetSource = &assetSourceMock{}

type assetSourceMock struct {
	ListInRangeFunc   func(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Asset, error)
	CountFunc         func(ctx context.Context) (int, error)
	CountByStatusFunc func(ctx context.Context) ([]domain.Bucket, error)

	calls struct {
		ListInRange []struct {
			Ctx   context.Context
			Rng   domain.DateRange
			Limit int
		}
		Count []struct {
			Ctx context.Context
		}
		CountByStatus []struct {
			Ctx context.Context
		}
	}
	lockListInRange   sync.RWMutex
	lockCount         sync.RWMutex
	lockCountByStatus sync.RWMutex
}

func (mock *assetSourceMock) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Asset, error) {
	if mock.ListInRangeFunc == nil {
		panic("assetSourceMock.ListInRangeFunc: method is nil but assetSource.ListInRange was just called")
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

func (mock *assetSourceMock) ListInRangeCalls() []struct {
	Ctx   context.Context
	Rng   domain.DateRange
	Limit int
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *assetSourceMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("assetSourceMock.CountFunc: method is nil but assetSource.Count was just called")
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

func (mock *assetSourceMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *assetSourceMock) CountByStatus(ctx context.Context) ([]domain.Bucket, error) {
	if mock.CountByStatusFunc == nil {
		panic("assetSourceMock.CountByStatusFunc: method is nil but assetSource.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *assetSourceMock) CountByStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}
