package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedSections_ServeHTTP(t *testing.T) {
	controller := FeedSections{ListCmd: command.NewListSections(seededStore(t), 6)}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, testContext()(httptest.NewRequest(http.MethodGet, "/v1/feed", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FeedSectionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, len(domain.Categories))

	got := map[domain.Category][]string{}
	for _, s := range resp.Data {
		got[s.Category] = decodedIDs(s.Articles)
	}
	assert.Equal(t, []string{"ai-1"}, got[domain.CategoryTrending])
	assert.Equal(t, []string{"ieee-1"}, got[domain.CategoryIEEEUpdates])
	assert.Equal(t, []string{}, got[domain.CategoryDeveloper])
}
