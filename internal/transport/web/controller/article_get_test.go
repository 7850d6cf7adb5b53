package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/datasources/mocks"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticleGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		articleID     string
		setupContext  func(r *http.Request) *http.Request
		wantStatus    int
		wantCacheCtrl string
		wantViews     int64
	}{
		{
			name:          "anonymous_fetch",
			articleID:     "ai-1",
			setupContext:  testContext(),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantViews:     5,
		},
		{
			name:          "authenticated_fetch_counts_view",
			articleID:     "ai-1",
			setupContext:  testContextWithUserID("user456"),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "private, no-store",
			wantViews:     6,
		},
		{
			name:         "not_found",
			articleID:    "missing",
			setupContext: testContext(),
			wantStatus:   http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := seededStore(t)
			controller := ArticleGet{
				GetCmd:      command.NewGetArticle(store, command.NewRecordArticleView(store, store)),
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/articles/"+tc.articleID, nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": tc.articleID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			assert.Equal(t, "Authorization", rec.Header().Get("Vary"))

			var resp ArticleGetResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.articleID, resp.Data.ID)
			assert.Equal(t, tc.wantViews, resp.Data.ViewCount)
			assert.Equal(t, domain.ColorPurple, resp.Data.Classification.DisplayColor)
		})
	}
}

func TestArticleGet_StoreError(t *testing.T) {
	getter := mocks.NewMockArticleGetter(t)
	getter.EXPECT().GetArticle(mock.Anything, "ai-1").Return(domain.Article{}, errors.New("database error")).Once()

	controller := ArticleGet{
		GetCmd: command.NewGetArticle(getter, command.NewRecordArticleView(
			mocks.NewMockViewInserter(t), mocks.NewMockViewCountIncrementer(t))),
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/articles/ai-1", nil))
	req = mux.SetURLVars(req, map[string]string{"article_id": "ai-1"})
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
