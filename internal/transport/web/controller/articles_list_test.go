package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/datasources/mocks"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticlesList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		queryString   string
		trendingOnly  bool
		setupContext  func(r *http.Request) *http.Request
		wantStatus    int
		wantCacheCtrl string
		wantIDs       []string
	}{
		{
			name:          "all_articles",
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantIDs:       []string{"ai-1", "ieee-1"},
		},
		{
			name:          "no_cache_for_authenticated_user",
			setupContext:  testContextWithUserID("user123"),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "private, no-store",
			wantIDs:       []string{"ai-1", "ieee-1"},
		},
		{
			name:          "category_filter",
			queryString:   "category=ieee_updates",
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantIDs:       []string{"ieee-1"},
		},
		{
			name:          "subcategory_and_tag",
			queryString:   "subcategory=Quantum+Computing&tag=PHYSICS",
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantIDs:       []string{"ai-1"},
		},
		{
			name:          "trending_route",
			trendingOnly:  true,
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantIDs:       []string{"ai-1"},
		},
		{
			name:          "empty_category",
			queryString:   "category=opportunities",
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantIDs:       []string{},
		},
		{
			name:         "unknown_category",
			queryString:  "category=sports",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "invalid_trending_flag",
			queryString:  "trending=maybe",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "limit_exceeds_max",
			queryString:  "limit=500",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := ArticlesList{
				ListCmd:      command.NewListArticles(seededStore(t), 20),
				TrendingOnly: tc.trendingOnly,
				DefaultLimit: 10,
				CacheMaxAge:  time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/articles?"+tc.queryString, nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			assert.Equal(t, "Authorization", rec.Header().Get("Vary"))

			var resp ArticlesListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantIDs, decodedIDs(resp.Data))
			assert.Equal(t, len(tc.wantIDs), resp.Metadata.Count)
			for _, a := range resp.Data {
				assert.Equal(t, a.Category, a.Classification.Section)
			}
		})
	}
}

func TestArticlesList_StoreError(t *testing.T) {
	lister := mocks.NewMockArticleLister(t)
	lister.EXPECT().ListArticles(mock.Anything, domain.ArticleFilter{Category: domain.CategoryAll, Limit: 10}).
		Return(nil, errors.New("database error")).Once()

	controller := ArticlesList{ListCmd: command.NewListArticles(lister, 20), DefaultLimit: 10}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/articles", nil))
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestArticlesSearch_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []string
		wantQuery  string
	}{
		{name: "title_match", query: "q=quantum", wantStatus: http.StatusOK, wantIDs: []string{"ai-1"}, wantQuery: "quantum"},
		{name: "no_match", query: "q=qubit", wantStatus: http.StatusOK, wantIDs: []string{}, wantQuery: "qubit"},
		{name: "blank_query_default_load", query: "q=+++", wantStatus: http.StatusOK, wantIDs: []string{"ai-1", "ieee-1"}},
		{name: "bad_limit", query: "q=x&limit=zero", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := ArticlesSearch{SearchCmd: command.NewSearchArticles(seededStore(t), 20)}

			req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/articles/search?"+tc.query, nil))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			var resp ArticlesListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantIDs, decodedIDs(resp.Data))
			assert.Equal(t, tc.wantQuery, resp.Metadata.Query)
		})
	}
}
