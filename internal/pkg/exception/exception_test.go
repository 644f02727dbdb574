package exception

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationError_Error(t *testing.T) {
	errorRequest := func(err ApplicationError, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, err.Error())
		}
	}

	t.Run("without_cause", errorRequest(ApplicationError{Message: "bad route"}, "bad route"))
	t.Run("with_cause", errorRequest(ApplicationError{
		Message: "bad price",
		Cause:   errors.New("not a number"),
	}, "bad price: not a number"))
}

func TestApplicationError_Is(t *testing.T) {
	sentinel := ApplicationError{
		Kind:       KindNotFound,
		Message:    "nothing here",
		StatusCode: http.StatusNotFound,
	}

	t.Run("wrapped_sentinel", func(t *testing.T) {
		err := fmt.Errorf("service: %w", sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("same_message_other_kind", func(t *testing.T) {
		other := ApplicationError{Kind: KindValidation, Message: "nothing here"}
		assert.False(t, errors.Is(other, sentinel))
	})

	t.Run("with_cause_matches_sentinel", func(t *testing.T) {
		err := fmt.Errorf("load: %w", sentinel.WithCause(errors.New("boom")))
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("with_cause_keeps_cause_chain", func(t *testing.T) {
		cause := errors.New("boom")
		assert.ErrorIs(t, sentinel.WithCause(cause), cause)
	})

	t.Run("different_causes_do_not_match", func(t *testing.T) {
		err := sentinel.WithCause(errors.New("boom"))
		assert.False(t, errors.Is(err, sentinel.WithCause(errors.New("other"))))
	})

	t.Run("sentinel_does_not_match_caused_target", func(t *testing.T) {
		assert.False(t, errors.Is(sentinel, sentinel.WithCause(errors.New("boom"))))
	})
}

func TestKind_IsRequestError(t *testing.T) {
	assert.True(t, KindRoute.IsRequestError())
	assert.True(t, KindValidation.IsRequestError())
	assert.True(t, KindNotFound.IsRequestError())
	assert.False(t, KindData.IsRequestError())
	assert.False(t, KindRateLimit.IsRequestError())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindData, KindOf(fmt.Errorf("load: %w", ApplicationError{Kind: KindData})))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
