package command

import (
	"context"
	"errors"
	"testing"

	"github.com/ieee-igdtuw/techfeed/internal/datasources/mocks"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSections_Execute(t *testing.T) {
	sections, err := NewListSections(seededStore(t), testLimits().Section).Execute(context.Background(), Empty{})
	require.NoError(t, err)
	require.Len(t, sections, len(domain.Categories))

	byCategory := map[domain.Category][]string{}
	for _, s := range sections {
		byCategory[s.Category] = ids(s.Articles)
	}
	assert.Equal(t, []string{"dev-1"}, byCategory[domain.CategoryTrending])
	assert.Equal(t, []string{"ai-1"}, byCategory[domain.CategoryAI])
	assert.Equal(t, []string{"q-1"}, byCategory[domain.CategoryResearch])
	assert.Equal(t, []string{"dev-1"}, byCategory[domain.CategoryDeveloper])
	assert.Equal(t, []string{}, byCategory[domain.CategoryOpportunities])
}

func TestListSections_AnyFailureFails(t *testing.T) {
	lister := mocks.NewMockArticleLister(t)
	lister.EXPECT().ListArticles(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
			if f.Category == domain.CategoryIEEEUpdates {
				return nil, errors.New("deadlock found")
			}
			return []domain.Article{}, nil
		}).Maybe()

	_, err := NewListSections(lister, 6).Execute(context.Background(), Empty{})
	var storeErr *domain.StoreError
	assert.True(t, errors.As(err, &storeErr))
}
