package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/dto"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr     exception.ApplicationError
		statusCode = http.StatusInternalServerError
		body       dto.ErrorResponse
	)

	if errors.As(err, &appErr) {
		if appErr.StatusCode != 0 {
			statusCode = appErr.StatusCode
		}

		body = dto.ErrorResponse{Error: appErr.Message, Kind: string(appErr.Kind)}
	} else {
		body = dto.ErrorResponse{Error: err.Error()}
	}

	if statusCode >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, body.Error, slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", contentTypeJSON)
	respWriter.WriteHeader(statusCode)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
