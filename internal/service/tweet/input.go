package tweet

// CreateInput holds the new tweet. UserID is only honoured for super-admins
// posting on behalf of a user.
type CreateInput struct {
	UserID int64
	Tweet  string
}

// EditInput replaces the text of TweetID.
type EditInput struct {
	TweetID  int64
	NewTweet string
}

// DeleteInput removes TweetID.
type DeleteInput struct {
	TweetID int64
}
