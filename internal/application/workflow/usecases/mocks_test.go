package usecases

import (
	"context"
	"time"

	"studium/internal/domain/allocation"
	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/domain/shared/events"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type mockRequestRepository struct {
	SaveFunc                  func(ctx context.Context, req *request.Request) error
	UpdateFunc                func(ctx context.Context, req *request.Request) error
	GetByIDFunc               func(ctx context.Context, id uint) (*request.Request, error)
	ListByRequesterFunc       func(ctx context.Context, requesterID uint, pagination utils.Pagination) ([]*request.Request, int64, error)
	ListPendingFunc           func(ctx context.Context, pagination utils.Pagination) ([]*request.Request, int64, error)
	ListPendingByResourceFunc func(ctx context.Context, resourceID uint) ([]*request.Request, error)
	HasPendingFunc            func(ctx context.Context, resourceID, requesterID uint) (bool, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListByRequester(ctx context.Context, requesterID uint, pagination utils.Pagination) ([]*request.Request, int64, error) {
	if m.ListByRequesterFunc != nil {
		return m.ListByRequesterFunc(ctx, requesterID, pagination)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) ListPending(ctx context.Context, pagination utils.Pagination) ([]*request.Request, int64, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, pagination)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) ListPendingByResource(ctx context.Context, resourceID uint) ([]*request.Request, error) {
	if m.ListPendingByResourceFunc != nil {
		return m.ListPendingByResourceFunc(ctx, resourceID)
	}
	return nil, nil
}

func (m *mockRequestRepository) HasPending(ctx context.Context, resourceID, requesterID uint) (bool, error) {
	if m.HasPendingFunc != nil {
		return m.HasPendingFunc(ctx, resourceID, requesterID)
	}
	return false, nil
}

type mockResourceRepository struct {
	SaveFunc        func(ctx context.Context, r *resource.Resource) error
	UpdateFunc      func(ctx context.Context, r *resource.Resource) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*resource.Resource, error)
	GetByRefFunc    func(ctx context.Context, kind resourcevo.ResourceKind, refID uint) (*resource.Resource, error)
	ReserveUnitFunc func(ctx context.Context, id uint) error
	ReleaseUnitFunc func(ctx context.Context, id uint) error
}

func (m *mockResourceRepository) Save(ctx context.Context, r *resource.Resource) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockResourceRepository) Update(ctx context.Context, r *resource.Resource) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockResourceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockResourceRepository) GetByID(ctx context.Context, id uint) (*resource.Resource, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockResourceRepository) GetByRef(ctx context.Context, kind resourcevo.ResourceKind, refID uint) (*resource.Resource, error) {
	if m.GetByRefFunc != nil {
		return m.GetByRefFunc(ctx, kind, refID)
	}
	return nil, nil
}

func (m *mockResourceRepository) ReserveUnit(ctx context.Context, id uint) error {
	if m.ReserveUnitFunc != nil {
		return m.ReserveUnitFunc(ctx, id)
	}
	return nil
}

func (m *mockResourceRepository) ReleaseUnit(ctx context.Context, id uint) error {
	if m.ReleaseUnitFunc != nil {
		return m.ReleaseUnitFunc(ctx, id)
	}
	return nil
}

// mockTransactionManager executes the function directly, on the same
// context, unless a RunInTransactionFunc overrides it.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockAllocationRepository struct {
	SaveFunc                         func(ctx context.Context, alloc *allocation.Allocation) error
	UpdateFunc                       func(ctx context.Context, alloc *allocation.Allocation) error
	DeleteFunc                       func(ctx context.Context, id uint) error
	GetByIDFunc                      func(ctx context.Context, id uint) (*allocation.Allocation, error)
	GetByRequestIDFunc               func(ctx context.Context, requestID uint) (*allocation.Allocation, error)
	ListByHolderFunc                 func(ctx context.Context, holderID uint, pagination utils.Pagination) ([]*allocation.Allocation, int64, error)
	ListActiveFunc                   func(ctx context.Context, pagination utils.Pagination) ([]*allocation.Allocation, int64, error)
	ListOverdueFunc                  func(ctx context.Context, asOf time.Time, pagination utils.Pagination) ([]*allocation.Allocation, int64, error)
	CountActiveByResourceFunc        func(ctx context.Context, resourceID uint) (int64, error)
	HasActiveByHolderAndResourceFunc func(ctx context.Context, holderID, resourceID uint) (bool, error)
}

func (m *mockAllocationRepository) Save(ctx context.Context, alloc *allocation.Allocation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, alloc)
	}
	return nil
}

func (m *mockAllocationRepository) Update(ctx context.Context, alloc *allocation.Allocation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, alloc)
	}
	return nil
}

func (m *mockAllocationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAllocationRepository) GetByID(ctx context.Context, id uint) (*allocation.Allocation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAllocationRepository) GetByRequestID(ctx context.Context, requestID uint) (*allocation.Allocation, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockAllocationRepository) ListByHolder(ctx context.Context, holderID uint, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	if m.ListByHolderFunc != nil {
		return m.ListByHolderFunc(ctx, holderID, pagination)
	}
	return nil, 0, nil
}

func (m *mockAllocationRepository) ListActive(ctx context.Context, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, pagination)
	}
	return nil, 0, nil
}

func (m *mockAllocationRepository) ListOverdue(ctx context.Context, asOf time.Time, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	if m.ListOverdueFunc != nil {
		return m.ListOverdueFunc(ctx, asOf, pagination)
	}
	return nil, 0, nil
}

func (m *mockAllocationRepository) CountActiveByResource(ctx context.Context, resourceID uint) (int64, error) {
	if m.CountActiveByResourceFunc != nil {
		return m.CountActiveByResourceFunc(ctx, resourceID)
	}
	return 0, nil
}

func (m *mockAllocationRepository) HasActiveByHolderAndResource(ctx context.Context, holderID, resourceID uint) (bool, error) {
	if m.HasActiveByHolderAndResourceFunc != nil {
		return m.HasActiveByHolderAndResourceFunc(ctx, holderID, resourceID)
	}
	return false, nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	SubscribeFunc  func(eventType string, handler events.EventHandler) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(eventType, handler)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
