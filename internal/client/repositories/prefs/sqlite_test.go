package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE prefs (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKeyReturnsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	value, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSet_InsertsAndUpserts(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyLoggedEmail, "a@b.c"))

	value, err := repo.Get(ctx, KeyLoggedEmail)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", value)

	require.NoError(t, repo.Set(ctx, KeyLoggedEmail, "other@b.c"))

	value, err = repo.Get(ctx, KeyLoggedEmail)
	require.NoError(t, err)
	assert.Equal(t, "other@b.c", value)
}

func TestDelete_RemovesSingleKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyLoggedEmail, "a@b.c"))
	require.NoError(t, repo.Set(ctx, KeyUserName, "Ana"))

	require.NoError(t, repo.Delete(ctx, KeyLoggedEmail))

	value, err := repo.Get(ctx, KeyLoggedEmail)
	require.NoError(t, err)
	assert.Equal(t, "", value)

	value, err = repo.Get(ctx, KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Ana", value)
}

func TestClear_RemovesEverything(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyLoggedEmail, "a@b.c"))
	require.NoError(t, repo.Set(ctx, KeyUserName, "Ana"))
	require.NoError(t, repo.Set(ctx, KeyLastTicketDate, "2026-08-28"))

	require.NoError(t, repo.Clear(ctx))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM prefs`).Scan(&count))
	assert.Equal(t, 0, count)
}
