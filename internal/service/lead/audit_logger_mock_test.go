package lead

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc          func(ctx context.Context, record domain.AuditRecord) error
	ListByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
		ListByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
	}
	lockLog          sync.RWMutex
	lockListByEntity sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditLoggerMock) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditLoggerMock.ListByEntityFunc: method is nil but auditLogger.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{
		Ctx:        ctx,
		EntityType: entityType,
		EntityID:   entityID,
		Limit:      limit,
	}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditLoggerMock) ListByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	mock.lockListByEntity.RLock()
	calls := mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}
