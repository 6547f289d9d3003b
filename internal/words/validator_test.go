package words

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValidate(t *testing.T) {
	t.Run("corpus words skip the remote lookup", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		v := NewValidator(srv.URL+"/", time.Second, discardLogger())

		assert.True(t, v.Validate(context.Background(), "smile"))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("short words are invalid without any lookup", func(t *testing.T) {
		v := NewValidator("", time.Second, discardLogger())
		assert.False(t, v.Validate(context.Background(), "ab"))
		assert.False(t, v.Validate(context.Background(), "  a "))
	})

	t.Run("remote 200 means valid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/xylophone", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		v := NewValidator(srv.URL+"/", time.Second, discardLogger())
		assert.True(t, v.Validate(context.Background(), "Xylophone"))
	})

	t.Run("remote 404 means invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		v := NewValidator(srv.URL+"/", time.Second, discardLogger())
		assert.False(t, v.Validate(context.Background(), "xzqjv"))
	})

	t.Run("remote failure resolves to invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		v := NewValidator(srv.URL+"/", time.Second, discardLogger())
		assert.False(t, v.Validate(context.Background(), "xylophone"))
	})

	t.Run("unreachable endpoint resolves to invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		v := NewValidator(srv.URL+"/", time.Second, discardLogger())
		assert.False(t, v.Validate(context.Background(), "xylophone"))
	})

	t.Run("empty base URL disables the remote fallback", func(t *testing.T) {
		v := NewValidator("", time.Second, discardLogger())
		assert.True(t, v.Validate(context.Background(), "smile"))
		assert.False(t, v.Validate(context.Background(), "xylophone"))
	})
}
