package product

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListFunc       func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	CategoriesFunc func(ctx context.Context) ([]domain.CategoryCount, error)
	SearchFunc     func(ctx context.Context, query string, limit int) ([]domain.Product, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.ProductFilter
		}
		Categories []struct{}
		Search     []struct {
			Query string
			Limit int
		}
	}
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockCategories sync.RWMutex
	lockSearch     sync.RWMutex
}

func (mock *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if mock.GetByIDFunc == nil {
		panic("productRepoMock.GetByIDFunc: method is nil but productRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *productRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *productRepoMock) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if mock.ListFunc == nil {
		panic("productRepoMock.ListFunc: method is nil but productRepo.List was just called")
	}
	callInfo := struct{ Filter domain.ProductFilter }{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *productRepoMock) ListCalls() []struct{ Filter domain.ProductFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *productRepoMock) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	if mock.CategoriesFunc == nil {
		panic("productRepoMock.CategoriesFunc: method is nil but productRepo.Categories was just called")
	}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, struct{}{})
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx)
}

func (mock *productRepoMock) CategoriesCalls() []struct{} {
	mock.lockCategories.RLock()
	calls := mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}

func (mock *productRepoMock) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if mock.SearchFunc == nil {
		panic("productRepoMock.SearchFunc: method is nil but productRepo.Search was just called")
	}
	callInfo := struct {
		Query string
		Limit int
	}{Query: query, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query, limit)
}

func (mock *productRepoMock) SearchCalls() []struct {
	Query string
	Limit int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
