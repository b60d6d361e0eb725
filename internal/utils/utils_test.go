package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContext(t *testing.T) {
	t.Run("SetUserContext and GetUserIDFromContext", func(t *testing.T) {
		ctx := SetUserContext(context.Background(), "u1", "admin@dalarosa.com", "ADMIN")

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "u1", id)
		assert.Equal(t, "admin@dalarosa.com", GetUserEmailFromContext(ctx))
		assert.Equal(t, "ADMIN", GetUserRoleFromContext(ctx))
	})

	t.Run("GetUserIDFromContext with empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
		assert.Empty(t, GetUserRoleFromContext(context.Background()))
	})
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "boom", http.StatusBadGateway)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "boom", body["error"])
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("Success", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Maria"}`))
		var p payload
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &p))
		assert.Equal(t, "Maria", p.Name)
	})

	t.Run("Empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &p), ErrInvalidBody)
	})

	t.Run("UnknownField", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Maria"}`))
		var p payload
		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &p), ErrInvalidBody)
	})
}

func TestWantsJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	assert.True(t, WantsJSON(r))

	r.Header.Set("Accept", "text/html,application/xhtml+xml")
	assert.False(t, WantsJSON(r))

	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	assert.True(t, WantsJSON(r))
}
