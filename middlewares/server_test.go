package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusConflict, "already a member"), http.StatusConflict, `{"message":"already a member"}`},
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound, `{"message":"item not found"}`},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			HTTPErrorHandler(tc.err, c)

			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestRecoverMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := recovermiddleware()(func(ctx echo.Context) error {
		panic("nil map")
	})(c)

	var he *echo.HTTPError
	assert.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
