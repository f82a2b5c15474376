package moderation

import "github.com/heartmarshall/twitter-backend/internal/domain"

// ProposeTweetCreateInput asks to post Tweet on behalf of UserID.
type ProposeTweetCreateInput struct {
	UserID int64
	Tweet  string
}

// ProposeTweetUpdateInput asks to replace the text of TweetID.
type ProposeTweetUpdateInput struct {
	TweetID  int64
	NewTweet string
}

// ProposeTweetDeleteInput asks to remove TweetID.
type ProposeTweetDeleteInput struct {
	TweetID int64
}

// ProposeUserUpdateInput asks to overwrite the non-empty profile fields of UserID.
type ProposeUserUpdateInput struct {
	UserID       int64
	NewFirstName string
	NewLastName  string
	NewBio       string
}

// Changes returns the proposed profile changes.
func (i ProposeUserUpdateInput) Changes() domain.ProfileChanges {
	return domain.ProfileChanges{FirstName: i.NewFirstName, LastName: i.NewLastName, Bio: i.NewBio}
}

// Validate validates the proposed profile fields.
func (i ProposeUserUpdateInput) Validate() error {
	return i.Changes().Validate()
}
