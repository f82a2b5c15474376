package logs

import (
	"context"
	"sync"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

var _ logReader = &logReaderMock{}

type logReaderMock struct {
	ReadAllFunc func(ctx context.Context) ([]domain.LogRecord, error)

	calls struct {
		ReadAll []struct {
			Ctx context.Context
		}
	}
	lockReadAll sync.RWMutex
}

func (mock *logReaderMock) ReadAll(ctx context.Context) ([]domain.LogRecord, error) {
	if mock.ReadAllFunc == nil {
		panic("logReaderMock.ReadAllFunc: method is nil but logReader.ReadAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReadAll.Lock()
	mock.calls.ReadAll = append(mock.calls.ReadAll, callInfo)
	mock.lockReadAll.Unlock()
	return mock.ReadAllFunc(ctx)
}

func (mock *logReaderMock) ReadAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockReadAll.RLock()
	calls := mock.calls.ReadAll
	mock.lockReadAll.RUnlock()
	return calls
}
