package rest

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/browse"
	"github.com/SiphoChris/afrilex/internal/service/word"
	"sync"
)

var _ browseService = &browseServiceMock{}

type browseServiceMock struct {
	BrowseFunc  func(ctx context.Context, st browse.ViewState, limit int, offset int) (word.BrowseResult, error)
	LettersFunc func() []string

	calls struct {
		Browse []struct {
			Ctx    context.Context
			St     browse.ViewState
			Limit  int
			Offset int
		}
		Letters []struct {
		}
	}
	lockBrowse  sync.RWMutex
	lockLetters sync.RWMutex
}

func (mock *browseServiceMock) Browse(ctx context.Context, st browse.ViewState, limit int, offset int) (word.BrowseResult, error) {
	if mock.BrowseFunc == nil {
		panic("browseServiceMock.BrowseFunc: method is nil but browseService.Browse was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		St     browse.ViewState
		Limit  int
		Offset int
	}{Ctx: ctx, St: st, Limit: limit, Offset: offset}
	mock.lockBrowse.Lock()
	mock.calls.Browse = append(mock.calls.Browse, callInfo)
	mock.lockBrowse.Unlock()
	return mock.BrowseFunc(ctx, st, limit, offset)
}

func (mock *browseServiceMock) BrowseCalls() []struct {
	Ctx    context.Context
	St     browse.ViewState
	Limit  int
	Offset int
} {
	mock.lockBrowse.RLock()
	calls := mock.calls.Browse
	mock.lockBrowse.RUnlock()
	return calls
}

func (mock *browseServiceMock) Letters() []string {
	if mock.LettersFunc == nil {
		panic("browseServiceMock.LettersFunc: method is nil but browseService.Letters was just called")
	}
	callInfo := struct {
	}{}
	mock.lockLetters.Lock()
	mock.calls.Letters = append(mock.calls.Letters, callInfo)
	mock.lockLetters.Unlock()
	return mock.LettersFunc()
}

func (mock *browseServiceMock) LettersCalls() []struct {
} {
	mock.lockLetters.RLock()
	calls := mock.calls.Letters
	mock.lockLetters.RUnlock()
	return calls
}
