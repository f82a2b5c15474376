package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

var _ auditSink = &auditSinkMock{}

type auditSinkMock struct {
	EmitFunc func(ctx context.Context, ev domain.AuditEvent)

	calls struct {
		Emit []struct {
			Ctx context.Context
			Ev  domain.AuditEvent
		}
	}
	lockEmit sync.RWMutex
}

func (mock *auditSinkMock) Emit(ctx context.Context, ev domain.AuditEvent) {
	if mock.EmitFunc == nil {
		panic("auditSinkMock.EmitFunc: method is nil but auditSink.Emit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.AuditEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, callInfo)
	mock.lockEmit.Unlock()
	mock.EmitFunc(ctx, ev)
}

func (mock *auditSinkMock) EmitCalls() []struct {
	Ctx context.Context
	Ev  domain.AuditEvent
} {
	mock.lockEmit.RLock()
	calls := mock.calls.Emit
	mock.lockEmit.RUnlock()
	return calls
}
