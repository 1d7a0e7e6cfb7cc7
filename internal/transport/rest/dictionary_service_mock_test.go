package rest

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/editor"
	"github.com/SiphoChris/afrilex/internal/service/dictionary"
	"github.com/google/uuid"
	"sync"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	DefaultsFunc      func(languageCode string) domain.Dictionary
	ListFunc          func(ctx context.Context) ([]domain.Dictionary, error)
	GetByLanguageFunc func(ctx context.Context, languageCode string) (domain.Dictionary, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.Dictionary, error)
	CreateFunc        func(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, d domain.Dictionary) (domain.Dictionary, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	OpenDraftFunc     func(ctx context.Context, dictionaryID *uuid.UUID) (dictionary.DraftView, error)
	DraftFunc         func(ctx context.Context, draftID uuid.UUID) (*editor.Editor, error)
	DraftViewFunc     func(ctx context.Context, draftID uuid.UUID) (dictionary.DraftView, error)
	SubmitDraftFunc   func(ctx context.Context, draftID uuid.UUID) (domain.Dictionary, editor.Notice, error)
	DiscardDraftFunc  func(ctx context.Context, draftID uuid.UUID) error

	calls struct {
		Defaults []struct {
			LanguageCode string
		}
		List []struct {
			Ctx context.Context
		}
		GetByLanguage []struct {
			Ctx          context.Context
			LanguageCode string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			D   domain.Dictionary
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			D   domain.Dictionary
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		OpenDraft []struct {
			Ctx          context.Context
			DictionaryID *uuid.UUID
		}
		Draft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		DraftView []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		SubmitDraft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		DiscardDraft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
	}
	lockDefaults      sync.RWMutex
	lockList          sync.RWMutex
	lockGetByLanguage sync.RWMutex
	lockGetByID       sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockOpenDraft     sync.RWMutex
	lockDraft         sync.RWMutex
	lockDraftView     sync.RWMutex
	lockSubmitDraft   sync.RWMutex
	lockDiscardDraft  sync.RWMutex
}

func (mock *dictionaryServiceMock) Defaults(languageCode string) domain.Dictionary {
	if mock.DefaultsFunc == nil {
		panic("dictionaryServiceMock.DefaultsFunc: method is nil but dictionaryService.Defaults was just called")
	}
	callInfo := struct {
		LanguageCode string
	}{LanguageCode: languageCode}
	mock.lockDefaults.Lock()
	mock.calls.Defaults = append(mock.calls.Defaults, callInfo)
	mock.lockDefaults.Unlock()
	return mock.DefaultsFunc(languageCode)
}

func (mock *dictionaryServiceMock) DefaultsCalls() []struct {
	LanguageCode string
} {
	mock.lockDefaults.RLock()
	calls := mock.calls.Defaults
	mock.lockDefaults.RUnlock()
	return calls
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

func (mock *dictionaryServiceMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Dictionary, error) {
	if mock.GetByIDFunc == nil {
		panic("dictionaryServiceMock.GetByIDFunc: method is nil but dictionaryService.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *dictionaryServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) Create(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error) {
	if mock.CreateFunc == nil {
		panic("dictionaryServiceMock.CreateFunc: method is nil but dictionaryService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Dictionary
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dictionaryServiceMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Dictionary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) Update(ctx context.Context, id uuid.UUID, d domain.Dictionary) (domain.Dictionary, error) {
	if mock.UpdateFunc == nil {
		panic("dictionaryServiceMock.UpdateFunc: method is nil but dictionaryService.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		D   domain.Dictionary
	}{Ctx: ctx, Id: id, D: d}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, d)
}

func (mock *dictionaryServiceMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	D   domain.Dictionary
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dictionaryServiceMock.DeleteFunc: method is nil but dictionaryService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dictionaryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) OpenDraft(ctx context.Context, dictionaryID *uuid.UUID) (dictionary.DraftView, error) {
	if mock.OpenDraftFunc == nil {
		panic("dictionaryServiceMock.OpenDraftFunc: method is nil but dictionaryService.OpenDraft was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DictionaryID *uuid.UUID
	}{Ctx: ctx, DictionaryID: dictionaryID}
	mock.lockOpenDraft.Lock()
	mock.calls.OpenDraft = append(mock.calls.OpenDraft, callInfo)
	mock.lockOpenDraft.Unlock()
	return mock.OpenDraftFunc(ctx, dictionaryID)
}

func (mock *dictionaryServiceMock) OpenDraftCalls() []struct {
	Ctx          context.Context
	DictionaryID *uuid.UUID
} {
	mock.lockOpenDraft.RLock()
	calls := mock.calls.OpenDraft
	mock.lockOpenDraft.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) Draft(ctx context.Context, draftID uuid.UUID) (*editor.Editor, error) {
	if mock.DraftFunc == nil {
		panic("dictionaryServiceMock.DraftFunc: method is nil but dictionaryService.Draft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockDraft.Lock()
	mock.calls.Draft = append(mock.calls.Draft, callInfo)
	mock.lockDraft.Unlock()
	return mock.DraftFunc(ctx, draftID)
}

func (mock *dictionaryServiceMock) DraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockDraft.RLock()
	calls := mock.calls.Draft
	mock.lockDraft.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DraftView(ctx context.Context, draftID uuid.UUID) (dictionary.DraftView, error) {
	if mock.DraftViewFunc == nil {
		panic("dictionaryServiceMock.DraftViewFunc: method is nil but dictionaryService.DraftView was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockDraftView.Lock()
	mock.calls.DraftView = append(mock.calls.DraftView, callInfo)
	mock.lockDraftView.Unlock()
	return mock.DraftViewFunc(ctx, draftID)
}

func (mock *dictionaryServiceMock) DraftViewCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockDraftView.RLock()
	calls := mock.calls.DraftView
	mock.lockDraftView.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) SubmitDraft(ctx context.Context, draftID uuid.UUID) (domain.Dictionary, editor.Notice, error) {
	if mock.SubmitDraftFunc == nil {
		panic("dictionaryServiceMock.SubmitDraftFunc: method is nil but dictionaryService.SubmitDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockSubmitDraft.Lock()
	mock.calls.SubmitDraft = append(mock.calls.SubmitDraft, callInfo)
	mock.lockSubmitDraft.Unlock()
	return mock.SubmitDraftFunc(ctx, draftID)
}

func (mock *dictionaryServiceMock) SubmitDraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockSubmitDraft.RLock()
	calls := mock.calls.SubmitDraft
	mock.lockSubmitDraft.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	if mock.DiscardDraftFunc == nil {
		panic("dictionaryServiceMock.DiscardDraftFunc: method is nil but dictionaryService.DiscardDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
	}{Ctx: ctx, DraftID: draftID}
	mock.lockDiscardDraft.Lock()
	mock.calls.DiscardDraft = append(mock.calls.DiscardDraft, callInfo)
	mock.lockDiscardDraft.Unlock()
	return mock.DiscardDraftFunc(ctx, draftID)
}

func (mock *dictionaryServiceMock) DiscardDraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockDiscardDraft.RLock()
	calls := mock.calls.DiscardDraft
	mock.lockDiscardDraft.RUnlock()
	return calls
}
