package campaign

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

var _ campaignRepo = &campaignRepoMock{}

type campaignRepoMock struct {
	CreateFunc       func(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (domain.Campaign, error)

	calls struct {
		Create []struct {
			Campaign domain.Campaign
		}
		GetByID []struct {
			ID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.CampaignStatus
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByUser   sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *campaignRepoMock) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if mock.CreateFunc == nil {
		panic("campaignRepoMock.CreateFunc: method is nil but campaignRepo.Create was just called")
	}
	callInfo := struct{ Campaign domain.Campaign }{Campaign: campaign}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, campaign)
}

func (mock *campaignRepoMock) CreateCalls() []struct{ Campaign domain.Campaign } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *campaignRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	if mock.GetByIDFunc == nil {
		panic("campaignRepoMock.GetByIDFunc: method is nil but campaignRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *campaignRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *campaignRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	if mock.ListByUserFunc == nil {
		panic("campaignRepoMock.ListByUserFunc: method is nil but campaignRepo.ListByUser was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *campaignRepoMock) ListByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *campaignRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (domain.Campaign, error) {
	if mock.UpdateStatusFunc == nil {
		panic("campaignRepoMock.UpdateStatusFunc: method is nil but campaignRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.CampaignStatus
	}{ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *campaignRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.CampaignStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
