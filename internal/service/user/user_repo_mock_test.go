package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfileFunc     func(ctx context.Context, id int64, changes domain.ProfileChanges) (*domain.User, error)
	ListNonPrivilegedFunc func(ctx context.Context) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateProfile []struct {
			Ctx     context.Context
			ID      int64
			Changes domain.ProfileChanges
		}
		ListNonPrivileged []struct {
			Ctx context.Context
		}
	}
	lockGetByID           sync.RWMutex
	lockUpdateProfile     sync.RWMutex
	lockListNonPrivileged sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id int64, changes domain.ProfileChanges) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      int64
		Changes domain.ProfileChanges
	}{
		Ctx:     ctx,
		ID:      id,
		Changes: changes,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, changes)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx     context.Context
	ID      int64
	Changes domain.ProfileChanges
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) ListNonPrivileged(ctx context.Context) ([]domain.User, error) {
	if mock.ListNonPrivilegedFunc == nil {
		panic("userRepoMock.ListNonPrivilegedFunc: method is nil but userRepo.ListNonPrivileged was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListNonPrivileged.Lock()
	mock.calls.ListNonPrivileged = append(mock.calls.ListNonPrivileged, callInfo)
	mock.lockListNonPrivileged.Unlock()
	return mock.ListNonPrivilegedFunc(ctx)
}

func (mock *userRepoMock) ListNonPrivilegedCalls() []struct {
	Ctx context.Context
} {
	mock.lockListNonPrivileged.RLock()
	calls := mock.calls.ListNonPrivileged
	mock.lockListNonPrivileged.RUnlock()
	return calls
}
