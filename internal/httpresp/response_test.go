package httpresp

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c, w
}

func TestPageFromQuery(t *testing.T) {
	cases := []struct {
		query string
		want  Page
	}{
		{"", Page{Page: 1, Limit: DefaultLimit}},
		{"page=3&limit=10", Page{Page: 3, Limit: 10}},
		{"page=-1&limit=1000", Page{Page: 1, Limit: DefaultLimit}},
		{"page=abc&limit=0", Page{Page: 1, Limit: DefaultLimit}},
	}

	for _, tc := range cases {
		c, _ := contextWithQuery(tc.query)
		assert.Equal(t, tc.want, PageFromQuery(c), tc.query)
	}

	assert.Equal(t, 20, Page{Page: 3, Limit: 10}.Offset())
}

func TestPaged_HasMore(t *testing.T) {
	c, w := contextWithQuery("")

	Paged(c, Page{Page: 1, Limit: 2}, []int{1, 2}, 5)

	var body PageResponse[int]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.HasMore)
	assert.Equal(t, int64(5), body.Total)
}

func TestList_NilBecomesEmptyArray(t *testing.T) {
	c, w := contextWithQuery("")

	List[string](c, nil)

	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}
