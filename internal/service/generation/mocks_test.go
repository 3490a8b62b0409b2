package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
	"github.com/campaignkit/campaignkit-backend/internal/router"
)

var _ campaignRepo = &campaignRepoMock{}

type campaignRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Campaign, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	PutFunc func(ctx context.Context, key string, body []byte, contentType string) error

	calls struct {
		Put []struct {
			Key         string
			Body        []byte
			ContentType string
		}
	}
	lockPut sync.RWMutex
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
	GenerateFunc func(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, router.Outcome, error)
	EmbedFunc    func(ctx context.Context, texts []string) ([][]float64, router.Outcome, error)

	calls struct {
		Generate []struct {
			Req provider.GenerateRequest
		}
		Embed []struct {
			Texts []string
		}
	}
	lockGenerate sync.RWMutex
	lockEmbed    sync.RWMutex
}

func (mock *aiRouterMock) Generate(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, router.Outcome, error) {
	if mock.GenerateFunc == nil {
		panic("aiRouterMock.GenerateFunc: method is nil but aiRouter.Generate was just called")
	}
	callInfo := struct{ Req provider.GenerateRequest }{Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *aiRouterMock) GenerateCalls() []struct{ Req provider.GenerateRequest } {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *aiRouterMock) Embed(ctx context.Context, texts []string) ([][]float64, router.Outcome, error) {
	if mock.EmbedFunc == nil {
		panic("aiRouterMock.EmbedFunc: method is nil but aiRouter.Embed was just called")
	}
	callInfo := struct{ Texts []string }{Texts: texts}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, texts)
}

func (mock *aiRouterMock) EmbedCalls() []struct{ Texts []string } {
	mock.lockEmbed.RLock()
	calls := mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}
