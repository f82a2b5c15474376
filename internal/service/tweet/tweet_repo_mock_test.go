package tweet

import (
	"context"
	"sync"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

var _ tweetRepo = &tweetRepoMock{}

type tweetRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Tweet, error)
	CreateFunc     func(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error)
	UpdateTextFunc func(ctx context.Context, id int64, text string) (*domain.Tweet, error)
	DeleteFunc     func(ctx context.Context, id int64) error
	ListByUserFunc func(ctx context.Context, userID int64) ([]domain.Tweet, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Tweet
		}
		UpdateText []struct {
			Ctx  context.Context
			ID   int64
			Text string
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockGetByID    sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdateText sync.RWMutex
	lockDelete     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *tweetRepoMock) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	if mock.GetByIDFunc == nil {
		panic("tweetRepoMock.GetByIDFunc: method is nil but tweetRepo.GetByID was just called")
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

func (mock *tweetRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tweetRepoMock) Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error) {
	if mock.CreateFunc == nil {
		panic("tweetRepoMock.CreateFunc: method is nil but tweetRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tweet
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tweetRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Tweet
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tweetRepoMock) UpdateText(ctx context.Context, id int64, text string) (*domain.Tweet, error) {
	if mock.UpdateTextFunc == nil {
		panic("tweetRepoMock.UpdateTextFunc: method is nil but tweetRepo.UpdateText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		Text string
	}{
		Ctx:  ctx,
		ID:   id,
		Text: text,
	}
	mock.lockUpdateText.Lock()
	mock.calls.UpdateText = append(mock.calls.UpdateText, callInfo)
	mock.lockUpdateText.Unlock()
	return mock.UpdateTextFunc(ctx, id, text)
}

func (mock *tweetRepoMock) UpdateTextCalls() []struct {
	Ctx  context.Context
	ID   int64
	Text string
} {
	mock.lockUpdateText.RLock()
	calls := mock.calls.UpdateText
	mock.lockUpdateText.RUnlock()
	return calls
}

func (mock *tweetRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("tweetRepoMock.DeleteFunc: method is nil but tweetRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *tweetRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tweetRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.Tweet, error) {
	if mock.ListByUserFunc == nil {
		panic("tweetRepoMock.ListByUserFunc: method is nil but tweetRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *tweetRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
