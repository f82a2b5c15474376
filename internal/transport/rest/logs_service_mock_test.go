package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/logs"
)

var _ logsService = &logsServiceMock{}

type logsServiceMock struct {
	AllFunc   func(ctx context.Context) ([]domain.LogRecord, error)
	QueryFunc func(ctx context.Context, input logs.QueryInput) (*logs.QueryResult, error)

	calls struct {
		All []struct {
			Ctx context.Context
		}
		Query []struct {
			Ctx   context.Context
			Input logs.QueryInput
		}
	}
	lockAll   sync.RWMutex
	lockQuery sync.RWMutex
}

func (mock *logsServiceMock) All(ctx context.Context) ([]domain.LogRecord, error) {
	if mock.AllFunc == nil {
		panic("logsServiceMock.AllFunc: method is nil but logsService.All was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAll.Lock()
	mock.calls.All = append(mock.calls.All, callInfo)
	mock.lockAll.Unlock()
	return mock.AllFunc(ctx)
}

func (mock *logsServiceMock) AllCalls() []struct {
	Ctx context.Context
} {
	mock.lockAll.RLock()
	calls := mock.calls.All
	mock.lockAll.RUnlock()
	return calls
}

func (mock *logsServiceMock) Query(ctx context.Context, input logs.QueryInput) (*logs.QueryResult, error) {
	if mock.QueryFunc == nil {
		panic("logsServiceMock.QueryFunc: method is nil but logsService.Query was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input logs.QueryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, input)
}

func (mock *logsServiceMock) QueryCalls() []struct {
	Ctx   context.Context
	Input logs.QueryInput
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
