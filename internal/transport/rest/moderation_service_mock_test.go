package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/service/moderation"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	ProposeTweetCreateFunc       func(ctx context.Context, input moderation.ProposeTweetCreateInput) error
	ProposeTweetUpdateFunc       func(ctx context.Context, input moderation.ProposeTweetUpdateInput) error
	ProposeTweetDeleteFunc       func(ctx context.Context, input moderation.ProposeTweetDeleteInput) error
	ProposeUserUpdateFunc        func(ctx context.Context, input moderation.ProposeUserUpdateInput) error
	ListPendingUserUpdatesFunc   func(ctx context.Context) ([]domain.UpdateUserRequest, error)
	ListPendingTweetRequestsFunc func(ctx context.Context) (*moderation.TweetRequests, error)
	ResolveTweetCreatesFunc      func(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
	ResolveTweetUpdatesFunc      func(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
	ResolveTweetDeletesFunc      func(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)
	ResolveUserUpdatesFunc       func(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error)

	calls struct {
		ProposeTweetCreate []struct {
			Ctx   context.Context
			Input moderation.ProposeTweetCreateInput
		}
		ProposeTweetUpdate []struct {
			Ctx   context.Context
			Input moderation.ProposeTweetUpdateInput
		}
		ProposeTweetDelete []struct {
			Ctx   context.Context
			Input moderation.ProposeTweetDeleteInput
		}
		ProposeUserUpdate []struct {
			Ctx   context.Context
			Input moderation.ProposeUserUpdateInput
		}
		ListPendingUserUpdates []struct {
			Ctx context.Context
		}
		ListPendingTweetRequests []struct {
			Ctx context.Context
		}
		ResolveTweetCreates []struct {
			Ctx       context.Context
			Decisions []domain.Decision
		}
		ResolveTweetUpdates []struct {
			Ctx       context.Context
			Decisions []domain.Decision
		}
		ResolveTweetDeletes []struct {
			Ctx       context.Context
			Decisions []domain.Decision
		}
		ResolveUserUpdates []struct {
			Ctx       context.Context
			Decisions []domain.Decision
		}
	}
	lockProposeTweetCreate       sync.RWMutex
	lockProposeTweetUpdate       sync.RWMutex
	lockProposeTweetDelete       sync.RWMutex
	lockProposeUserUpdate        sync.RWMutex
	lockListPendingUserUpdates   sync.RWMutex
	lockListPendingTweetRequests sync.RWMutex
	lockResolveTweetCreates      sync.RWMutex
	lockResolveTweetUpdates      sync.RWMutex
	lockResolveTweetDeletes      sync.RWMutex
	lockResolveUserUpdates       sync.RWMutex
}

func (mock *moderationServiceMock) ProposeTweetCreate(ctx context.Context, input moderation.ProposeTweetCreateInput) error {
	if mock.ProposeTweetCreateFunc == nil {
		panic("moderationServiceMock.ProposeTweetCreateFunc: method is nil but moderationService.ProposeTweetCreate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ProposeTweetCreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockProposeTweetCreate.Lock()
	mock.calls.ProposeTweetCreate = append(mock.calls.ProposeTweetCreate, callInfo)
	mock.lockProposeTweetCreate.Unlock()
	return mock.ProposeTweetCreateFunc(ctx, input)
}

func (mock *moderationServiceMock) ProposeTweetCreateCalls() []struct {
	Ctx   context.Context
	Input moderation.ProposeTweetCreateInput
} {
	mock.lockProposeTweetCreate.RLock()
	calls := mock.calls.ProposeTweetCreate
	mock.lockProposeTweetCreate.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ProposeTweetUpdate(ctx context.Context, input moderation.ProposeTweetUpdateInput) error {
	if mock.ProposeTweetUpdateFunc == nil {
		panic("moderationServiceMock.ProposeTweetUpdateFunc: method is nil but moderationService.ProposeTweetUpdate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ProposeTweetUpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockProposeTweetUpdate.Lock()
	mock.calls.ProposeTweetUpdate = append(mock.calls.ProposeTweetUpdate, callInfo)
	mock.lockProposeTweetUpdate.Unlock()
	return mock.ProposeTweetUpdateFunc(ctx, input)
}

func (mock *moderationServiceMock) ProposeTweetUpdateCalls() []struct {
	Ctx   context.Context
	Input moderation.ProposeTweetUpdateInput
} {
	mock.lockProposeTweetUpdate.RLock()
	calls := mock.calls.ProposeTweetUpdate
	mock.lockProposeTweetUpdate.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ProposeTweetDelete(ctx context.Context, input moderation.ProposeTweetDeleteInput) error {
	if mock.ProposeTweetDeleteFunc == nil {
		panic("moderationServiceMock.ProposeTweetDeleteFunc: method is nil but moderationService.ProposeTweetDelete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ProposeTweetDeleteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockProposeTweetDelete.Lock()
	mock.calls.ProposeTweetDelete = append(mock.calls.ProposeTweetDelete, callInfo)
	mock.lockProposeTweetDelete.Unlock()
	return mock.ProposeTweetDeleteFunc(ctx, input)
}

func (mock *moderationServiceMock) ProposeTweetDeleteCalls() []struct {
	Ctx   context.Context
	Input moderation.ProposeTweetDeleteInput
} {
	mock.lockProposeTweetDelete.RLock()
	calls := mock.calls.ProposeTweetDelete
	mock.lockProposeTweetDelete.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ProposeUserUpdate(ctx context.Context, input moderation.ProposeUserUpdateInput) error {
	if mock.ProposeUserUpdateFunc == nil {
		panic("moderationServiceMock.ProposeUserUpdateFunc: method is nil but moderationService.ProposeUserUpdate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ProposeUserUpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockProposeUserUpdate.Lock()
	mock.calls.ProposeUserUpdate = append(mock.calls.ProposeUserUpdate, callInfo)
	mock.lockProposeUserUpdate.Unlock()
	return mock.ProposeUserUpdateFunc(ctx, input)
}

func (mock *moderationServiceMock) ProposeUserUpdateCalls() []struct {
	Ctx   context.Context
	Input moderation.ProposeUserUpdateInput
} {
	mock.lockProposeUserUpdate.RLock()
	calls := mock.calls.ProposeUserUpdate
	mock.lockProposeUserUpdate.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ListPendingUserUpdates(ctx context.Context) ([]domain.UpdateUserRequest, error) {
	if mock.ListPendingUserUpdatesFunc == nil {
		panic("moderationServiceMock.ListPendingUserUpdatesFunc: method is nil but moderationService.ListPendingUserUpdates was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPendingUserUpdates.Lock()
	mock.calls.ListPendingUserUpdates = append(mock.calls.ListPendingUserUpdates, callInfo)
	mock.lockListPendingUserUpdates.Unlock()
	return mock.ListPendingUserUpdatesFunc(ctx)
}

func (mock *moderationServiceMock) ListPendingUserUpdatesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPendingUserUpdates.RLock()
	calls := mock.calls.ListPendingUserUpdates
	mock.lockListPendingUserUpdates.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ListPendingTweetRequests(ctx context.Context) (*moderation.TweetRequests, error) {
	if mock.ListPendingTweetRequestsFunc == nil {
		panic("moderationServiceMock.ListPendingTweetRequestsFunc: method is nil but moderationService.ListPendingTweetRequests was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPendingTweetRequests.Lock()
	mock.calls.ListPendingTweetRequests = append(mock.calls.ListPendingTweetRequests, callInfo)
	mock.lockListPendingTweetRequests.Unlock()
	return mock.ListPendingTweetRequestsFunc(ctx)
}

func (mock *moderationServiceMock) ListPendingTweetRequestsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPendingTweetRequests.RLock()
	calls := mock.calls.ListPendingTweetRequests
	mock.lockListPendingTweetRequests.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ResolveTweetCreates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	if mock.ResolveTweetCreatesFunc == nil {
		panic("moderationServiceMock.ResolveTweetCreatesFunc: method is nil but moderationService.ResolveTweetCreates was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Decisions []domain.Decision
	}{
		Ctx:       ctx,
		Decisions: decisions,
	}
	mock.lockResolveTweetCreates.Lock()
	mock.calls.ResolveTweetCreates = append(mock.calls.ResolveTweetCreates, callInfo)
	mock.lockResolveTweetCreates.Unlock()
	return mock.ResolveTweetCreatesFunc(ctx, decisions)
}

func (mock *moderationServiceMock) ResolveTweetCreatesCalls() []struct {
	Ctx       context.Context
	Decisions []domain.Decision
} {
	mock.lockResolveTweetCreates.RLock()
	calls := mock.calls.ResolveTweetCreates
	mock.lockResolveTweetCreates.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ResolveTweetUpdates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	if mock.ResolveTweetUpdatesFunc == nil {
		panic("moderationServiceMock.ResolveTweetUpdatesFunc: method is nil but moderationService.ResolveTweetUpdates was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Decisions []domain.Decision
	}{
		Ctx:       ctx,
		Decisions: decisions,
	}
	mock.lockResolveTweetUpdates.Lock()
	mock.calls.ResolveTweetUpdates = append(mock.calls.ResolveTweetUpdates, callInfo)
	mock.lockResolveTweetUpdates.Unlock()
	return mock.ResolveTweetUpdatesFunc(ctx, decisions)
}

func (mock *moderationServiceMock) ResolveTweetUpdatesCalls() []struct {
	Ctx       context.Context
	Decisions []domain.Decision
} {
	mock.lockResolveTweetUpdates.RLock()
	calls := mock.calls.ResolveTweetUpdates
	mock.lockResolveTweetUpdates.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ResolveTweetDeletes(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	if mock.ResolveTweetDeletesFunc == nil {
		panic("moderationServiceMock.ResolveTweetDeletesFunc: method is nil but moderationService.ResolveTweetDeletes was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Decisions []domain.Decision
	}{
		Ctx:       ctx,
		Decisions: decisions,
	}
	mock.lockResolveTweetDeletes.Lock()
	mock.calls.ResolveTweetDeletes = append(mock.calls.ResolveTweetDeletes, callInfo)
	mock.lockResolveTweetDeletes.Unlock()
	return mock.ResolveTweetDeletesFunc(ctx, decisions)
}

func (mock *moderationServiceMock) ResolveTweetDeletesCalls() []struct {
	Ctx       context.Context
	Decisions []domain.Decision
} {
	mock.lockResolveTweetDeletes.RLock()
	calls := mock.calls.ResolveTweetDeletes
	mock.lockResolveTweetDeletes.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ResolveUserUpdates(ctx context.Context, decisions []domain.Decision) ([]domain.ItemResult, error) {
	if mock.ResolveUserUpdatesFunc == nil {
		panic("moderationServiceMock.ResolveUserUpdatesFunc: method is nil but moderationService.ResolveUserUpdates was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Decisions []domain.Decision
	}{
		Ctx:       ctx,
		Decisions: decisions,
	}
	mock.lockResolveUserUpdates.Lock()
	mock.calls.ResolveUserUpdates = append(mock.calls.ResolveUserUpdates, callInfo)
	mock.lockResolveUserUpdates.Unlock()
	return mock.ResolveUserUpdatesFunc(ctx, decisions)
}

func (mock *moderationServiceMock) ResolveUserUpdatesCalls() []struct {
	Ctx       context.Context
	Decisions []domain.Decision
} {
	mock.lockResolveUserUpdates.RLock()
	calls := mock.calls.ResolveUserUpdates
	mock.lockResolveUserUpdates.RUnlock()
	return calls
}
