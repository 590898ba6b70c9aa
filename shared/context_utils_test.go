package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetSession(t *testing.T) {
	e := echo.New()

	t.Run("should return NoSession if nothing is set", func(t *testing.T) {
		ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
		assert.Equal(t, NoSession, GetSession(ctx))
		assert.False(t, IsAuthenticated(ctx))
	})

	t.Run("should return the session set before", func(t *testing.T) {
		ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
		SetSession(ctx, NewSession("user-1"))
		assert.Equal(t, "user-1", GetSession(ctx).GetUserID())
		assert.True(t, IsAuthenticated(ctx))
	})
}

func TestGetUUIDParam(t *testing.T) {
	e := echo.New()
	id := uuid.New()

	ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	ctx.SetParamNames("codeCheckID")
	ctx.SetParamValues(id.String())

	parsed, err := GetUUIDParam(ctx, "codeCheckID")
	assert.Nil(t, err)
	assert.Equal(t, id, parsed)

	ctx.SetParamValues("not-a-uuid")
	_, err = GetUUIDParam(ctx, "codeCheckID")
	assert.NotNil(t, err)

	_, err = GetUUIDParam(ctx, "other")
	assert.NotNil(t, err)
}
