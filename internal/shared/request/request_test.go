package request_test

import (
	"net/http/httptest"
	"testing"

	"go-onboarding/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("WEB", ""))
	assert.Equal(t, request.ClientMobile, request.ResolveClientType("", "okhttp/4.9"))
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("", "Mozilla/5.0"))
	assert.Equal(t, request.ClientAPI, request.ResolveClientType("", "curl/8.0"))
	assert.True(t, request.IsWebClient(request.ClientWeb))
	assert.False(t, request.IsWebClient(request.ClientAPI))
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 10},
		{"page size", "?page=3&page_size=20", 3, 20},
		{"limit alias", "?limit=5", 1, 5},
		{"capped", "?page_size=1000", 1, 100},
		{"garbage", "?page=-1&page_size=abc", 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/items"+tc.query, nil)

			p := request.ParsePage(c)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.pageSize, p.PageSize)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, request.Slice(items, request.Page{Page: 2, PageSize: 2}))
	assert.Empty(t, request.Slice(items, request.Page{Page: 4, PageSize: 2}))
}

func TestActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", "u-1")
	c.Set("role", "employee")

	a := request.ActorFrom(c)
	assert.Equal(t, "u-1", a.UserID)
	assert.False(t, a.IsPrivileged())
	assert.True(t, a.Owns("u-1"))
	assert.False(t, a.Owns("u-2"))

	hr := request.Actor{UserID: "h-1", Role: "hr"}
	assert.True(t, hr.Owns("u-2"))
	assert.False(t, request.Actor{}.Owns(""))
}
