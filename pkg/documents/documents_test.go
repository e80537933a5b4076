package documents

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hatchdotlol/geosignup/pkg/db"
	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestSQLCollection_AddAppends(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	users := NewSQLCollection(conn, "users")
	other := NewSQLCollection(conn, "other")

	rec := models.SignupRecord{Username: "Ali", Email: "a@b.com", Phone: "+92-312-3456789"}

	id1, err := users.Add(ctx, rec)
	require.NoError(t, err)
	id2, err := users.Add(ctx, rec)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2, "resubmission creates a second record")

	n, err := users.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = other.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	var body string
	require.NoError(t, conn.QueryRow("SELECT body FROM documents WHERE id = ?", id1).Scan(&body))

	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &stored))
	require.Equal(t, map[string]any{"username": "Ali", "email": "a@b.com", "phone": "+92-312-3456789"}, stored)
}

func TestSQLCollection_ClosedDB(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	conn.Close()

	_, err = NewSQLCollection(conn, "users").Add(context.Background(), models.SignupRecord{})
	require.Error(t, err)
}
