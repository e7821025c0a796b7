package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
	"golang.org/x/mod/semver"
)

// ErrInvalidKey is returned for keys without a name or a valid version.
var ErrInvalidKey = errors.New("invalid blob key")

const blobsTable = "blobs"

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func validKey(k Key) error {
	if k.Name == "" || !semver.IsValid(k.Version) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, k.String())
	}
	return nil
}

// blobRepo implements BlobRepo on the blobs table.
type blobRepo struct {
	db *sqlx.DB
}

func (r *blobRepo) Load(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	b := builder()
	query, args := b.Select("data").
		From(b.Table(blobsTable)).
		Where(entsql.And(entsql.EQ("name", key.Name), entsql.EQ("version", key.Version))).
		Query()

	var data []byte
	if err := r.db.GetContext(ctx, &data, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load blob %s: %w", key, err)
	}
	return data, true, nil
}

func (r *blobRepo) Save(ctx context.Context, key Key, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	query, args := builder().Insert(blobsTable).
		Columns("name", "version", "data", "updated_at").
		Values(key.Name, key.Version, data, time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("name", "version"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save blob %s: %w", key, err)
	}
	return nil
}

func (r *blobRepo) Delete(ctx context.Context, key Key) error {
	if err := validKey(key); err != nil {
		return err
	}
	query, args := builder().Delete(blobsTable).
		Where(entsql.And(entsql.EQ("name", key.Name), entsql.EQ("version", key.Version))).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}

func (r *blobRepo) PruneStale(ctx context.Context, key Key) (int, error) {
	if err := validKey(key); err != nil {
		return 0, err
	}
	b := builder()
	query, args := b.Select("version").
		From(b.Table(blobsTable)).
		Where(entsql.EQ("name", key.Name)).
		Query()

	var versions []string
	if err := r.db.SelectContext(ctx, &versions, query, args...); err != nil {
		return 0, fmt.Errorf("list versions of %s: %w", key.Name, err)
	}

	var stale []any
	for _, v := range versions {
		if !semver.IsValid(v) || semver.Compare(v, key.Version) < 0 {
			stale = append(stale, v)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	query, args = b.Delete(blobsTable).
		Where(entsql.And(entsql.EQ("name", key.Name), entsql.In("version", stale...))).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune %s: %w", key.Name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune %s: %w", key.Name, err)
	}
	return int(n), nil
}
