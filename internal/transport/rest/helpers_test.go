package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/transport/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Username: "alice", Role: domain.UserRoleUser}
}

func adminActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Username: "root", Role: domain.UserRoleAdmin}
}

// serve routes req through a router built from h, with actor as the caller.
func serve(t *testing.T, h Handlers, actor domain.Actor, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if actor.ID != uuid.Nil {
		req = req.WithContext(middleware.WithActor(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
