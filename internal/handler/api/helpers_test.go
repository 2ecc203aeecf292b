//go:build unit

package api_test

import (
	"fmt"
	"net/http"

	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const testToken = "bearer-token"

// fakeAuth stands in for RequireAuth and attaches a fixed principal.
func fakeAuth(p staff.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func newPrincipal(role staff.Role) staff.Principal {
	return staff.NewPrincipal(uuid.New(), uuid.New(), role)
}

func newTestRouter(auth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth)
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r
}

type cmpMatcher struct {
	want any
}

// eqCmp matches with cmp.Equal so Money compares by value.
func eqCmp(want any) gomock.Matcher {
	return cmpMatcher{want: want}
}

func (m cmpMatcher) Matches(x any) bool {
	return cmp.Equal(m.want, x)
}

func (m cmpMatcher) String() string {
	return fmt.Sprintf("is cmp.Equal to %+v", m.want)
}
