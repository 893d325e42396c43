package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(handlerCalls *int) (*gin.Engine, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/payslips", middleware.Idempotency(db), func(c *gin.Context) {
		*handlerCalls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, mock
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(&calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestAcquiresLock(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(&calls)

	cacheKey := "idemp:/payslips:abc-123"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(&calls)

	cacheKey := "idemp:/payslips:abc-123"
	mock.ExpectGet(cacheKey).SetVal(`{"id":3,"employeeId":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, calls, "handler must not run on a replay")
	assert.Contains(t, w.Body.String(), `"employeeId":1`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateRejected(t *testing.T) {
	calls := 0
	r, mock := newIdempotencyRouter(&calls)

	cacheKey := "idemp:/payslips:abc-123"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payslips", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
