package rest

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/service/word"
	"github.com/SiphoChris/afrilex/internal/wordform"
	"github.com/google/uuid"
	"sync"
)

var _ wordService = &wordServiceMock{}

type wordServiceMock struct {
	ListFunc         func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (domain.Word, error)
	IssuesFunc       func(ctx context.Context, id uuid.UUID) ([]domain.FieldError, error)
	CreateFunc       func(ctx context.Context, w domain.Word) (domain.Word, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, w domain.Word) (domain.Word, error)
	SetPublishedFunc func(ctx context.Context, id uuid.UUID, published bool) (domain.Word, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	OpenDraftFunc    func(ctx context.Context, languageCode string, wordID *uuid.UUID) (word.DraftView, error)
	DraftFunc        func(ctx context.Context, draftID uuid.UUID) (*wordform.Form, error)
	DraftViewFunc    func(ctx context.Context, draftID uuid.UUID) (word.DraftView, error)
	AttachAudioFunc  func(ctx context.Context, draftID uuid.UUID, a wordform.Audio) (wordform.Notice, error)
	SubmitDraftFunc  func(ctx context.Context, draftID uuid.UUID) (domain.Word, wordform.Notice, error)
	DiscardDraftFunc func(ctx context.Context, draftID uuid.UUID) error
	AudioFunc        func(ctx context.Context, id uuid.UUID) (domain.AudioFile, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Issues []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			W   domain.Word
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			W   domain.Word
		}
		SetPublished []struct {
			Ctx       context.Context
			Id        uuid.UUID
			Published bool
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		OpenDraft []struct {
			Ctx          context.Context
			LanguageCode string
			WordID       *uuid.UUID
		}
		Draft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		DraftView []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		AttachAudio []struct {
			Ctx     context.Context
			DraftID uuid.UUID
			A       wordform.Audio
		}
		SubmitDraft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		DiscardDraft []struct {
			Ctx     context.Context
			DraftID uuid.UUID
		}
		Audio []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList         sync.RWMutex
	lockGet          sync.RWMutex
	lockIssues       sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockSetPublished sync.RWMutex
	lockDelete       sync.RWMutex
	lockOpenDraft    sync.RWMutex
	lockDraft        sync.RWMutex
	lockDraftView    sync.RWMutex
	lockAttachAudio  sync.RWMutex
	lockSubmitDraft  sync.RWMutex
	lockDiscardDraft sync.RWMutex
	lockAudio        sync.RWMutex
}

func (mock *wordServiceMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	if mock.ListFunc == nil {
		panic("wordServiceMock.ListFunc: method is nil but wordService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *wordServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	if mock.GetFunc == nil {
		panic("wordServiceMock.GetFunc: method is nil but wordService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *wordServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *wordServiceMock) Issues(ctx context.Context, id uuid.UUID) ([]domain.FieldError, error) {
	if mock.IssuesFunc == nil {
		panic("wordServiceMock.IssuesFunc: method is nil but wordService.Issues was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockIssues.Lock()
	mock.calls.Issues = append(mock.calls.Issues, callInfo)
	mock.lockIssues.Unlock()
	return mock.IssuesFunc(ctx, id)
}

func (mock *wordServiceMock) IssuesCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockIssues.RLock()
	calls := mock.calls.Issues
	mock.lockIssues.RUnlock()
	return calls
}

func (mock *wordServiceMock) Create(ctx context.Context, w domain.Word) (domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordServiceMock.CreateFunc: method is nil but wordService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordServiceMock) CreateCalls() []struct {
	Ctx context.Context
	W   domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordServiceMock) Update(ctx context.Context, id uuid.UUID, w domain.Word) (domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordServiceMock.UpdateFunc: method is nil but wordService.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		W   domain.Word
	}{Ctx: ctx, Id: id, W: w}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, w)
}

func (mock *wordServiceMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	W   domain.Word
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordServiceMock) SetPublished(ctx context.Context, id uuid.UUID, published bool) (domain.Word, error) {
	if mock.SetPublishedFunc == nil {
		panic("wordServiceMock.SetPublishedFunc: method is nil but wordService.SetPublished was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		Published bool
	}{Ctx: ctx, Id: id, Published: published}
	mock.lockSetPublished.Lock()
	mock.calls.SetPublished = append(mock.calls.SetPublished, callInfo)
	mock.lockSetPublished.Unlock()
	return mock.SetPublishedFunc(ctx, id, published)
}

func (mock *wordServiceMock) SetPublishedCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	Published bool
} {
	mock.lockSetPublished.RLock()
	calls := mock.calls.SetPublished
	mock.lockSetPublished.RUnlock()
	return calls
}

func (mock *wordServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordServiceMock.DeleteFunc: method is nil but wordService.Delete was just called")
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

func (mock *wordServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wordServiceMock) OpenDraft(ctx context.Context, languageCode string, wordID *uuid.UUID) (word.DraftView, error) {
	if mock.OpenDraftFunc == nil {
		panic("wordServiceMock.OpenDraftFunc: method is nil but wordService.OpenDraft was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LanguageCode string
		WordID       *uuid.UUID
	}{Ctx: ctx, LanguageCode: languageCode, WordID: wordID}
	mock.lockOpenDraft.Lock()
	mock.calls.OpenDraft = append(mock.calls.OpenDraft, callInfo)
	mock.lockOpenDraft.Unlock()
	return mock.OpenDraftFunc(ctx, languageCode, wordID)
}

func (mock *wordServiceMock) OpenDraftCalls() []struct {
	Ctx          context.Context
	LanguageCode string
	WordID       *uuid.UUID
} {
	mock.lockOpenDraft.RLock()
	calls := mock.calls.OpenDraft
	mock.lockOpenDraft.RUnlock()
	return calls
}

func (mock *wordServiceMock) Draft(ctx context.Context, draftID uuid.UUID) (*wordform.Form, error) {
	if mock.DraftFunc == nil {
		panic("wordServiceMock.DraftFunc: method is nil but wordService.Draft was just called")
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

func (mock *wordServiceMock) DraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockDraft.RLock()
	calls := mock.calls.Draft
	mock.lockDraft.RUnlock()
	return calls
}

func (mock *wordServiceMock) DraftView(ctx context.Context, draftID uuid.UUID) (word.DraftView, error) {
	if mock.DraftViewFunc == nil {
		panic("wordServiceMock.DraftViewFunc: method is nil but wordService.DraftView was just called")
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

func (mock *wordServiceMock) DraftViewCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockDraftView.RLock()
	calls := mock.calls.DraftView
	mock.lockDraftView.RUnlock()
	return calls
}

func (mock *wordServiceMock) AttachAudio(ctx context.Context, draftID uuid.UUID, a wordform.Audio) (wordform.Notice, error) {
	if mock.AttachAudioFunc == nil {
		panic("wordServiceMock.AttachAudioFunc: method is nil but wordService.AttachAudio was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DraftID uuid.UUID
		A       wordform.Audio
	}{Ctx: ctx, DraftID: draftID, A: a}
	mock.lockAttachAudio.Lock()
	mock.calls.AttachAudio = append(mock.calls.AttachAudio, callInfo)
	mock.lockAttachAudio.Unlock()
	return mock.AttachAudioFunc(ctx, draftID, a)
}

func (mock *wordServiceMock) AttachAudioCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
	A       wordform.Audio
} {
	mock.lockAttachAudio.RLock()
	calls := mock.calls.AttachAudio
	mock.lockAttachAudio.RUnlock()
	return calls
}

func (mock *wordServiceMock) SubmitDraft(ctx context.Context, draftID uuid.UUID) (domain.Word, wordform.Notice, error) {
	if mock.SubmitDraftFunc == nil {
		panic("wordServiceMock.SubmitDraftFunc: method is nil but wordService.SubmitDraft was just called")
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

func (mock *wordServiceMock) SubmitDraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockSubmitDraft.RLock()
	calls := mock.calls.SubmitDraft
	mock.lockSubmitDraft.RUnlock()
	return calls
}

func (mock *wordServiceMock) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	if mock.DiscardDraftFunc == nil {
		panic("wordServiceMock.DiscardDraftFunc: method is nil but wordService.DiscardDraft was just called")
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

func (mock *wordServiceMock) DiscardDraftCalls() []struct {
	Ctx     context.Context
	DraftID uuid.UUID
} {
	mock.lockDiscardDraft.RLock()
	calls := mock.calls.DiscardDraft
	mock.lockDiscardDraft.RUnlock()
	return calls
}

func (mock *wordServiceMock) Audio(ctx context.Context, id uuid.UUID) (domain.AudioFile, error) {
	if mock.AudioFunc == nil {
		panic("wordServiceMock.AudioFunc: method is nil but wordService.Audio was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockAudio.Lock()
	mock.calls.Audio = append(mock.calls.Audio, callInfo)
	mock.lockAudio.Unlock()
	return mock.AudioFunc(ctx, id)
}

func (mock *wordServiceMock) AudioCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockAudio.RLock()
	calls := mock.calls.Audio
	mock.lockAudio.RUnlock()
	return calls
}
