package sheet

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWriter(t *testing.T, handler http.HandlerFunc) *Writer {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	w, err := NewWriter(context.Background(),
		Config{SpreadsheetID: "sheet-123"},
		testLogger(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return w
}

func TestUpdate(t *testing.T) {
	var gotMethod, gotPath, gotInputOption string
	var gotBody struct {
		Values [][]any `json:"values"`
	}

	w := newTestWriter(t, func(rw http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotInputOption = r.URL.Query().Get("valueInputOption")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		rw.Header().Set("Content-Type", "application/json")
		json.NewEncoder(rw).Encode(map[string]any{
			"spreadsheetId": "sheet-123",
			"updatedRange":  "Outbound!A1:R3",
			"updatedRows":   3,
			"updatedCells":  54,
		})
	})

	values := [][]any{
		{"ID", "Phone Number"},
		{"c1", "+61400000000"},
	}

	updated, err := w.Update(context.Background(), "Outbound!A1:Z", values)

	require.NoError(t, err)
	assert.Equal(t, int64(54), updated)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Contains(t, gotPath, "/v4/spreadsheets/sheet-123/values/")
	assert.Equal(t, "USER_ENTERED", gotInputOption)
	require.Len(t, gotBody.Values, 2)
	assert.Equal(t, []any{"c1", "+61400000000"}, gotBody.Values[1])
}

func TestUpdate_APIError(t *testing.T) {
	w := newTestWriter(t, func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	})

	_, err := w.Update(context.Background(), "Outbound!A1:Z", [][]any{{"ID"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update range Outbound!A1:Z")
}
