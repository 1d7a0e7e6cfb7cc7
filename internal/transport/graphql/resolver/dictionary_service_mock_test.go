package resolver

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	ListFunc          func(ctx context.Context) ([]domain.Dictionary, error)
	GetByLanguageFunc func(ctx context.Context, languageCode string) (domain.Dictionary, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByLanguage []struct {
			Ctx          context.Context
			LanguageCode string
		}
	}
	lockList          sync.RWMutex
	lockGetByLanguage sync.RWMutex
}

func (mock *dictionaryServiceMock) List(ctx context.Context) ([]domain.Dictionary, error) {
	if mock.ListFunc == nil {
		panic("dictionaryServiceMock.ListFunc: method is nil but dictionaryService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *dictionaryServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error) {
	if mock.GetByLanguageFunc == nil {
		panic("dictionaryServiceMock.GetByLanguageFunc: method is nil but dictionaryService.GetByLanguage was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LanguageCode string
	}{Ctx: ctx, LanguageCode: languageCode}
	mock.lockGetByLanguage.Lock()
	mock.calls.GetByLanguage = append(mock.calls.GetByLanguage, callInfo)
	mock.lockGetByLanguage.Unlock()
	return mock.GetByLanguageFunc(ctx, languageCode)
}

func (mock *dictionaryServiceMock) GetByLanguageCalls() []struct {
	Ctx          context.Context
	LanguageCode string
} {
	mock.lockGetByLanguage.RLock()
	calls := mock.calls.GetByLanguage
	mock.lockGetByLanguage.RUnlock()
	return calls
}
