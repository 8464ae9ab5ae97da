package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sobadon/wappuradio/domain/model/history"
	"github.com/sobadon/wappuradio/domain/repository"
	"github.com/sobadon/wappuradio/internal/errutil"
	"github.com/sobadon/wappuradio/internal/fileutil"
)

type historySqlite struct {
	UUID    string    `db:"uuid"`
	Song    string    `db:"song"`
	HeardAt time.Time `db:"heard_at"`
}

func historySqliteToModelEntry(hSqlite historySqlite) history.Entry {
	return history.Entry{
		UUID:    hSqlite.UUID,
		Song:    hSqlite.Song,
		HeardAt: hSqlite.HeardAt,
	}
}

func modelEntryToHistorySqlite(entry history.Entry) historySqlite {
	return historySqlite{
		UUID: entry.UUID,
		Song: entry.Song,
		// 文字列比較で大小が決まるよう UTC に揃える
		HeardAt: entry.HeardAt.UTC(),
	}
}

func NewDB(dbPath string) (*sqlx.DB, error) {
	err := fileutil.MkdirParentIfNotExist(dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}

	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	return db, nil
}

// テーブル作成
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`create table if not exists history (
		uuid text primary key,
		song text not null,
		heard_at timestamp not null,
		created_at timestamp not null default (datetime('now', 'localtime'))
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`create index if not exists index_history_heard_at on history (heard_at);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

type client struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) repository.HistoryPersistence {
	return &client{
		DB: db,
	}
}

func (c *client) Save(ctx context.Context, entry history.Entry) error {
	hSqlite := modelEntryToHistorySqlite(entry)
	_, err := c.DB.NamedExecContext(ctx,
		`insert into history (uuid, song, heard_at) values (:uuid, :song, :heard_at)`,
		hSqlite)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFoundHistory
func (c *client) LoadRecent(ctx context.Context, limit int) ([]history.Entry, error) {
	var hSqlites []historySqlite
	err := c.DB.SelectContext(ctx, &hSqlites, `select uuid, song, heard_at from history order by heard_at desc limit ?`, limit)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(hSqlites) == 0 {
		return nil, errors.Wrap(errutil.ErrDatabaseNotFoundHistory, "not found history")
	}

	entries := make([]history.Entry, 0, len(hSqlites))
	for _, hSqlite := range hSqlites {
		entries = append(entries, historySqliteToModelEntry(hSqlite))
	}
	return entries, nil
}

func (c *client) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := c.DB.ExecContext(ctx, `delete from history where heard_at < ?`, before.UTC())
	if err != nil {
		return 0, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return deleted, nil
}
