package domain

import (
	"encoding/json"
	"slices"
)

// BookmarkSet is the set of article IDs a user has bookmarked. The zero value
// is an empty set ready to use. Copies made with Clone share nothing.
type BookmarkSet struct {
	ids map[string]struct{}
}

func NewBookmarkSet(articleIDs ...string) BookmarkSet {
	s := BookmarkSet{ids: make(map[string]struct{}, len(articleIDs))}
	for _, id := range articleIDs {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *BookmarkSet) Insert(articleID string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[articleID] = struct{}{}
}

func (s *BookmarkSet) Remove(articleID string) {
	delete(s.ids, articleID)
}

func (s BookmarkSet) Contains(articleID string) bool {
	_, ok := s.ids[articleID]
	return ok
}

func (s BookmarkSet) Len() int {
	return len(s.ids)
}

func (s BookmarkSet) Clone() BookmarkSet {
	c := BookmarkSet{ids: make(map[string]struct{}, len(s.ids))}
	for id := range s.ids {
		c.ids[id] = struct{}{}
	}
	return c
}

// IDs returns the members in sorted order.
func (s BookmarkSet) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s BookmarkSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}
