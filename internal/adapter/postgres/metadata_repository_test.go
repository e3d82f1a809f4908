package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainledger/internal/core/domain"
)

type fakeRow struct {
	raw []byte
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.raw
	return nil
}

// fakeDB keeps documents in memory and mimics ON CONFLICT DO NOTHING.
type fakeDB struct {
	rows     map[string][]byte
	execErr  error
	queryErr error
	execs    int
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	f.execs++
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	cid := args[0].(string)
	if _, ok := f.rows[cid]; !ok {
		f.rows[cid] = args[1].([]byte)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if f.queryErr != nil {
		return fakeRow{err: f.queryErr}
	}
	raw, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{raw: raw}
}

func newRepo(db *fakeDB) *MetadataRepository {
	return NewMetadataRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMetadataRepositoryRoundTrip(t *testing.T) {
	db := &fakeDB{rows: map[string][]byte{}}
	repo := newRepo(db)
	ctx := context.Background()

	_, ok := repo.Get(ctx, "bafy")
	assert.False(t, ok)

	title := "Clean water"
	repo.Set(ctx, "bafy", &domain.CampaignMetadata{Title: &title})

	got, ok := repo.Get(ctx, "bafy")
	require.True(t, ok)
	require.NotNil(t, got.Title)
	assert.Equal(t, title, *got.Title)
}

func TestMetadataRepositoryFirstWriteWins(t *testing.T) {
	db := &fakeDB{rows: map[string][]byte{}}
	repo := newRepo(db)
	ctx := context.Background()

	first, second := "first", "second"
	repo.Set(ctx, "bafy", &domain.CampaignMetadata{Title: &first})
	repo.Set(ctx, "bafy", &domain.CampaignMetadata{Title: &second})

	got, ok := repo.Get(ctx, "bafy")
	require.True(t, ok)
	assert.Equal(t, first, *got.Title)
}

func TestMetadataRepositorySkipsNil(t *testing.T) {
	db := &fakeDB{rows: map[string][]byte{}}
	newRepo(db).Set(context.Background(), "bafy", nil)
	assert.Zero(t, db.execs)
}

func TestMetadataRepositoryErrorsAreMisses(t *testing.T) {
	db := &fakeDB{rows: map[string][]byte{}, queryErr: errors.New("connection reset")}
	_, ok := newRepo(db).Get(context.Background(), "bafy")
	assert.False(t, ok)

	db = &fakeDB{rows: map[string][]byte{"bafy": []byte("{broken")}}
	_, ok = newRepo(db).Get(context.Background(), "bafy")
	assert.False(t, ok)

	db = &fakeDB{rows: map[string][]byte{}, execErr: errors.New("read only")}
	title := "x"
	assert.NotPanics(t, func() {
		newRepo(db).Set(context.Background(), "bafy", &domain.CampaignMetadata{Title: &title})
	})
}

func TestMetadataRepositoryStoresJSONDocument(t *testing.T) {
	db := &fakeDB{rows: map[string][]byte{}}
	title, verified := "Shelter", true
	newRepo(db).Set(context.Background(), "bafy", &domain.CampaignMetadata{Title: &title, Verified: &verified})

	var doc map[string]any
	require.NoError(t, json.Unmarshal(db.rows["bafy"], &doc))
	assert.Equal(t, "Shelter", doc["title"])
	assert.Equal(t, true, doc["verified"])
}
