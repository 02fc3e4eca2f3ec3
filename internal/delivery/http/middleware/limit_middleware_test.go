package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goalazo/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitTestContext(t *testing.T, rawLimit string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	target := "/countries"
	if rawLimit != "" {
		target += "?limit=" + rawLimit
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestLimitMiddleware_Handle(t *testing.T) {
	cfg := &config.Config{Request: &config.RequestConfig{MaxLimit: 50}}
	m := NewLimitMiddleware(cfg)

	tests := []struct {
		name      string
		rawLimit  string
		wantLimit int
	}{
		{name: "missing falls back to max", rawLimit: "", wantLimit: 50},
		{name: "below max passes through", rawLimit: "10", wantLimit: 10},
		{name: "above max is clamped", rawLimit: "500", wantLimit: 50},
		{name: "equal to max passes through", rawLimit: "50", wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newLimitTestContext(t, tt.rawLimit)

			var gotLimit int
			err := m.Handle(func(c echo.Context) error {
				gotLimit = GetLimit(c)

				return nil
			})(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestLimitMiddleware_RejectsInvalidLimits(t *testing.T) {
	m := NewLimitMiddleware(nil)

	// Zero is the repositories' unbounded sentinel and must never reach them.
	for _, rawLimit := range []string{"0", "-1", "abc"} {
		t.Run(rawLimit, func(t *testing.T) {
			c, rec := newLimitTestContext(t, rawLimit)

			nextCalled := false
			err := m.Handle(func(c echo.Context) error {
				nextCalled = true

				return nil
			})(c)

			assert.NoError(t, err)
			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}
}

func TestGetLimit_NotSet(t *testing.T) {
	c, _ := newLimitTestContext(t, "")

	assert.Equal(t, 0, GetLimit(c))
}
