package router

import (
	"context"
	"sync"

	"github.com/campaignkit/campaignkit-backend/internal/provider"
)

var _ Embedder = &embedderMock{}

type embedderMock struct {
	EmbedFunc func(ctx context.Context, texts []string) (provider.EmbedResult, error)

	calls struct {
		Embed []struct {
			Texts []string
		}
	}
	lockEmbed sync.RWMutex
}

func (mock *embedderMock) Embed(ctx context.Context, texts []string) (provider.EmbedResult, error) {
	if mock.EmbedFunc == nil {
		panic("embedderMock.EmbedFunc: method is nil but Embedder.Embed was just called")
	}
	callInfo := struct{ Texts []string }{Texts: texts}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, texts)
}

func (mock *embedderMock) EmbedCalls() []struct{ Texts []string } {
	mock.lockEmbed.RLock()
	calls := mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}

var _ Generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, error)

	calls struct {
		Generate []struct {
			Req provider.GenerateRequest
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but Generator.Generate was just called")
	}
	callInfo := struct{ Req provider.GenerateRequest }{Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *generatorMock) GenerateCalls() []struct{ Req provider.GenerateRequest } {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ ImageEditor = &imageEditorMock{}

type imageEditorMock struct {
	EditImageFunc func(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, error)

	calls struct {
		EditImage []struct {
			Req provider.ImageEditRequest
		}
	}
	lockEditImage sync.RWMutex
}

func (mock *imageEditorMock) EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, error) {
	if mock.EditImageFunc == nil {
		panic("imageEditorMock.EditImageFunc: method is nil but ImageEditor.EditImage was just called")
	}
	callInfo := struct{ Req provider.ImageEditRequest }{Req: req}
	mock.lockEditImage.Lock()
	mock.calls.EditImage = append(mock.calls.EditImage, callInfo)
	mock.lockEditImage.Unlock()
	return mock.EditImageFunc(ctx, req)
}

func (mock *imageEditorMock) EditImageCalls() []struct{ Req provider.ImageEditRequest } {
	mock.lockEditImage.RLock()
	calls := mock.calls.EditImage
	mock.lockEditImage.RUnlock()
	return calls
}
