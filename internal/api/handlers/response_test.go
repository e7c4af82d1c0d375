package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Happy Paws"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Happy Paws", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "x", "extra": 1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &dst), ErrEmptyBody)
}

func TestRespondValidation(t *testing.T) {
	w := httptest.NewRecorder()
	RespondValidation(w, "анкета заполнена с ошибками", []FieldDetail{{Field: "species_ids", Message: "is required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "species_ids", body.Fields[0].Field)
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondInternalError(w)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "внутренняя ошибка сервера"}`, w.Body.String())
}
