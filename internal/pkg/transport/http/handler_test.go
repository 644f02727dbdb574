package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name"`
}

type boundRequest struct {
	Name string `json:"name"`
}

func (b *boundRequest) Bind(_ *http.Request) error {
	if b.Name == "" {
		return exception.ApplicationError{
			Kind:       exception.KindValidation,
			Message:    "name is a required field",
			StatusCode: http.StatusBadRequest,
		}
	}

	return nil
}

func TestDecodeRequest(t *testing.T) {
	t.Run("plain_type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"AMS"}`))

		got, err := DecodeRequest[echoRequest](context.Background(), r)

		require.NoError(t, err)
		assert.Equal(t, &echoRequest{Name: "AMS"}, got)
	})

	t.Run("binder_is_called", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		_, err := DecodeRequest[boundRequest](context.Background(), r)

		assert.EqualError(t, err, "name is a required field")
		assert.Equal(t, exception.KindValidation, exception.KindOf(err))
	})

	t.Run("malformed_body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		_, err := DecodeRequest[echoRequest](context.Background(), r)

		var appErr exception.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "invalid request body", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})
}

func TestMakeHandlerFunc(t *testing.T) {
	handler := MakeHandlerFunc(
		func(_ context.Context, req interface{}) (interface{}, error) {
			r := req.(*echoRequest)
			if r.Name == "fail" {
				return nil, errors.New("endpoint failed")
			}
			return r, nil
		},
		DecodeRequest[echoRequest],
		ResponseWithBody,
	)

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"FRA"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"FRA"}`, rec.Body.String())
	})

	t.Run("decode_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`nope`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid request body","kind":"validation_error"}`, rec.Body.String())
	})

	t.Run("endpoint_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"fail"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"endpoint failed"}`, rec.Body.String())
	})
}
