package edit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
	"github.com/campaignkit/campaignkit-backend/internal/router"
)

var _ editRepo = &editRepoMock{}

type editRepoMock struct {
	CreateFunc       func(ctx context.Context, edit domain.ImageEdit) (domain.ImageEdit, error)
	UpdateResultFunc func(ctx context.Context, id uuid.UUID, outcome domain.EditOutcome) (domain.ImageEdit, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.ImageEdit, error)
	ListFunc         func(ctx context.Context, filter domain.EditFilter) ([]domain.ImageEdit, error)

	calls struct {
		Create []struct {
			Edit domain.ImageEdit
		}
		UpdateResult []struct {
			ID      uuid.UUID
			Outcome domain.EditOutcome
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.EditFilter
		}
	}
	lockCreate       sync.RWMutex
	lockUpdateResult sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *editRepoMock) Create(ctx context.Context, edit domain.ImageEdit) (domain.ImageEdit, error) {
	if mock.CreateFunc == nil {
		panic("editRepoMock.CreateFunc: method is nil but editRepo.Create was just called")
	}
	callInfo := struct{ Edit domain.ImageEdit }{Edit: edit}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, edit)
}

func (mock *editRepoMock) CreateCalls() []struct{ Edit domain.ImageEdit } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *editRepoMock) UpdateResult(ctx context.Context, id uuid.UUID, outcome domain.EditOutcome) (domain.ImageEdit, error) {
	if mock.UpdateResultFunc == nil {
		panic("editRepoMock.UpdateResultFunc: method is nil but editRepo.UpdateResult was just called")
	}
	callInfo := struct {
		ID      uuid.UUID
		Outcome domain.EditOutcome
	}{ID: id, Outcome: outcome}
	mock.lockUpdateResult.Lock()
	mock.calls.UpdateResult = append(mock.calls.UpdateResult, callInfo)
	mock.lockUpdateResult.Unlock()
	return mock.UpdateResultFunc(ctx, id, outcome)
}

func (mock *editRepoMock) UpdateResultCalls() []struct {
	ID      uuid.UUID
	Outcome domain.EditOutcome
} {
	mock.lockUpdateResult.RLock()
	calls := mock.calls.UpdateResult
	mock.lockUpdateResult.RUnlock()
	return calls
}

func (mock *editRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.ImageEdit, error) {
	if mock.GetByIDFunc == nil {
		panic("editRepoMock.GetByIDFunc: method is nil but editRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *editRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *editRepoMock) List(ctx context.Context, filter domain.EditFilter) ([]domain.ImageEdit, error) {
	if mock.ListFunc == nil {
		panic("editRepoMock.ListFunc: method is nil but editRepo.List was just called")
	}
	callInfo := struct{ Filter domain.EditFilter }{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *editRepoMock) ListCalls() []struct{ Filter domain.EditFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ campaignRepo = &campaignRepoMock{}

type campaignRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (domain.Campaign, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.CampaignStatus
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	GetFunc func(ctx context.Context, key string) ([]byte, string, error)
	PutFunc func(ctx context.Context, key string, body []byte, contentType string) error

	calls struct {
		Get []struct {
			Key string
		}
		Put []struct {
			Key         string
			Body        []byte
			ContentType string
		}
	}
	lockGet sync.RWMutex
	lockPut sync.RWMutex
}

func (mock *objectStoreMock) Get(ctx context.Context, key string) ([]byte, string, error) {
	if mock.GetFunc == nil {
		panic("objectStoreMock.GetFunc: method is nil but objectStore.Get was just called")
	}
	callInfo := struct{ Key string }{Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *objectStoreMock) GetCalls() []struct{ Key string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *objectStoreMock) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if mock.PutFunc == nil {
		panic("objectStoreMock.PutFunc: method is nil but objectStore.Put was just called")
	}
	callInfo := struct {
		Key         string
		Body        []byte
		ContentType string
	}{Key: key, Body: body, ContentType: contentType}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, body, contentType)
}

func (mock *objectStoreMock) PutCalls() []struct {
	Key         string
	Body        []byte
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

var _ aiRouter = &aiRouterMock{}

type aiRouterMock struct {
	EditImageFunc func(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, router.Outcome, error)
	PrimaryFunc   func(capability domain.Capability) domain.Provider

	calls struct {
		EditImage []struct {
			Req provider.ImageEditRequest
		}
		Primary []struct {
			Capability domain.Capability
		}
	}
	lockEditImage sync.RWMutex
	lockPrimary   sync.RWMutex
}

func (mock *aiRouterMock) EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, router.Outcome, error) {
	if mock.EditImageFunc == nil {
		panic("aiRouterMock.EditImageFunc: method is nil but aiRouter.EditImage was just called")
	}
	callInfo := struct{ Req provider.ImageEditRequest }{Req: req}
	mock.lockEditImage.Lock()
	mock.calls.EditImage = append(mock.calls.EditImage, callInfo)
	mock.lockEditImage.Unlock()
	return mock.EditImageFunc(ctx, req)
}

func (mock *aiRouterMock) EditImageCalls() []struct{ Req provider.ImageEditRequest } {
	mock.lockEditImage.RLock()
	calls := mock.calls.EditImage
	mock.lockEditImage.RUnlock()
	return calls
}

func (mock *aiRouterMock) Primary(capability domain.Capability) domain.Provider {
	if mock.PrimaryFunc == nil {
		panic("aiRouterMock.PrimaryFunc: method is nil but aiRouter.Primary was just called")
	}
	callInfo := struct{ Capability domain.Capability }{Capability: capability}
	mock.lockPrimary.Lock()
	mock.calls.Primary = append(mock.calls.Primary, callInfo)
	mock.lockPrimary.Unlock()
	return mock.PrimaryFunc(capability)
}

func (mock *aiRouterMock) PrimaryCalls() []struct{ Capability domain.Capability } {
	mock.lockPrimary.RLock()
	calls := mock.calls.Primary
	mock.lockPrimary.RUnlock()
	return calls
}
