package domain

import "time"

// RequestKind identifies one of the four moderated actions.
type RequestKind string

const (
	RequestTweetCreate RequestKind = "tweet_create"
	RequestTweetUpdate RequestKind = "tweet_update"
	RequestTweetDelete RequestKind = "tweet_delete"
	RequestUserUpdate  RequestKind = "user_update"
)

func (k RequestKind) String() string { return string(k) }

// IsValid reports whether k is a known kind.
func (k RequestKind) IsValid() bool {
	switch k {
	case RequestTweetCreate, RequestTweetUpdate, RequestTweetDelete, RequestUserUpdate:
		return true
	}
	return false
}

// RequestState is the lifecycle shared by every approval request.
// A request starts pending and is resolved exactly once; Responded never
// goes back to false.
type RequestState struct {
	ID            int64
	AdminID       int64
	AdminUsername string
	Responded     bool
	ActionGranted bool
	CreatedAt     time.Time
}

// IsPending reports whether the request still awaits a decision.
func (s *RequestState) IsPending() bool {
	return !s.Responded
}

// Resolve records the decision. It fails with ErrAlreadyResolved when the
// request was already responded to.
func (s *RequestState) Resolve(granted bool) error {
	if s.Responded {
		return ErrAlreadyResolved
	}
	s.Responded = true
	s.ActionGranted = granted
	return nil
}

// CreateTweetRequest asks to post Tweet on behalf of UserID.
type CreateTweetRequest struct {
	RequestState
	UserID   int64
	Username string
	Tweet    string
}

// UpdateTweetRequest asks to replace the text of TweetID.
// OldTweet and OwnerUsername are filled for listings while the tweet exists.
type UpdateTweetRequest struct {
	RequestState
	TweetID       int64
	NewTweet      string
	OldTweet      string
	OwnerUsername string
}

// DeleteTweetRequest asks to remove TweetID.
type DeleteTweetRequest struct {
	RequestState
	TweetID       int64
	Tweet         string
	OwnerUsername string
}

// UpdateUserRequest asks to overwrite profile fields of UserID.
// Current holds the stored profile at listing time.
type UpdateUserRequest struct {
	RequestState
	UserID   int64
	Username string
	Changes  ProfileChanges
	Current  ProfileChanges
}

// Decision is one super-admin verdict inside a resolution batch.
type Decision struct {
	RequestID     int64
	ActionGranted bool
}

// Outcome is the per-item result of a resolution batch.
type Outcome int

const (
	OutcomeSaved Outcome = iota
	OutcomeFailed
	OutcomeNotFound
	OutcomeAlreadyResponded
)

// Message is the client-facing text of o.
func (o Outcome) Message() string {
	switch o {
	case OutcomeSaved:
		return "Response saved."
	case OutcomeNotFound:
		return "Id not present."
	case OutcomeAlreadyResponded:
		return "Request already responded."
	default:
		return "Response failed."
	}
}

// IsError reports whether o is rendered under the "error" key.
func (o Outcome) IsError() bool {
	return o != OutcomeSaved
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeAlreadyResponded:
		return "already_responded"
	default:
		return "failed"
	}
}

// ItemResult pairs a request id with its outcome.
type ItemResult struct {
	RequestID int64
	Outcome   Outcome
}
