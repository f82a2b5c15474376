package auth

import (
	"context"
	"sync"
	"time"
)

var _ tokenDenylist = &tokenDenylistMock{}

type tokenDenylistMock struct {
	RevokeFunc    func(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)

	calls struct {
		Revoke []struct {
			Ctx       context.Context
			TokenID   string
			ExpiresAt time.Time
		}
		IsRevoked []struct {
			Ctx     context.Context
			TokenID string
		}
	}
	lockRevoke    sync.RWMutex
	lockIsRevoked sync.RWMutex
}

func (mock *tokenDenylistMock) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if mock.RevokeFunc == nil {
		panic("tokenDenylistMock.RevokeFunc: method is nil but tokenDenylist.Revoke was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenID   string
		ExpiresAt time.Time
	}{
		Ctx:       ctx,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, tokenID, expiresAt)
}

func (mock *tokenDenylistMock) RevokeCalls() []struct {
	Ctx       context.Context
	TokenID   string
	ExpiresAt time.Time
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *tokenDenylistMock) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if mock.IsRevokedFunc == nil {
		panic("tokenDenylistMock.IsRevokedFunc: method is nil but tokenDenylist.IsRevoked was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
	}{
		Ctx:     ctx,
		TokenID: tokenID,
	}
	mock.lockIsRevoked.Lock()
	mock.calls.IsRevoked = append(mock.calls.IsRevoked, callInfo)
	mock.lockIsRevoked.Unlock()
	return mock.IsRevokedFunc(ctx, tokenID)
}

func (mock *tokenDenylistMock) IsRevokedCalls() []struct {
	Ctx     context.Context
	TokenID string
} {
	mock.lockIsRevoked.RLock()
	calls := mock.calls.IsRevoked
	mock.lockIsRevoked.RUnlock()
	return calls
}
