package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltrixai/go-backend/pkg/e"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{"plain", "15000", 15000, nil},
		{"zero decimals", "15000.00", 15000, nil},
		{"zero", "0", 0, nil},
		{"fraction", "15000.50", 0, e.ErrPricePrecision},
		{"negative", "-1", 0, e.ErrInvalidPrice},
		{"empty", "", 0, e.ErrInvalidPrice},
		{"garbage", "lima belas ribu", 0, e.ErrInvalidPrice},
		{"over limit", "1000000000001", 0, e.ErrInvalidPrice},
		{"at limit", "1000000000000", 1_000_000_000_000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", e.Wrap("op", e.ErrNoItems), http.StatusBadRequest, e.ErrNoItems.Error()},
		{"unauthorized", e.ErrUnauthorized, http.StatusUnauthorized, e.ErrUnauthorized.Error()},
		{"bad credentials", e.Wrap("op", e.ErrInvalidCredentials), http.StatusUnauthorized, e.ErrInvalidCredentials.Error()},
		{"product missing", e.Wrap("op", e.ErrProductNotFound), http.StatusNotFound, e.ErrProductNotFound.Error()},
		{"email taken", e.Wrap("op", e.ErrEmailTaken), http.StatusConflict, e.ErrEmailTaken.Error()},
		{"out of stock", e.Wrap("op", e.ErrInsufficientStock), http.StatusConflict, e.ErrInsufficientStock.Error()},
		{"unreadable receipt", e.ErrUnparsableReceipt, http.StatusUnprocessableEntity, e.ErrUnparsableReceipt.Error()},
		{"unknown errors do not leak", errors.New("pg: connection refused"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
