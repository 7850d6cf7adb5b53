package datasources

// FeedRepository is everything the feed engine needs from a store driver.
type FeedRepository interface {
	ArticleLister
	ArticleGetter
	ChallengeLister
	ChallengeGetter
	BookmarkStore
	ViewStore
}
