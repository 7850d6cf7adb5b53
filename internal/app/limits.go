package app

import (
	"github.com/ieee-igdtuw/techfeed/internal/command"
)

// DefaultFeedLimits returns the page size of each kind of list.
func DefaultFeedLimits() command.FeedLimits {
	return command.FeedLimits{
		Section:     6,
		Trending:    10,
		Search:      20,
		Category:    20,
		Subcategory: 15,
		Challenges:  5,
		Bookmarks:   50,
	}
}

const (
	maxSessions    = 10000
	maxCachedLists = 1000
)
