//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"
	"time"

	"github.com/sobadon/wappuradio/domain/model/history"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/playback"
	"github.com/sobadon/wappuradio/domain/model/program"
)

// 放送局の API
// 取得に失敗してもエラーは返さず、「値なし」として扱う（ログは出す）
type Station interface {
	// 取得できなければ nil
	GetNowPlaying(ctx context.Context) *nowplaying.NowPlaying

	// その日の番組表（並び順は保証しない）
	// 取得できなければ ok = false
	GetPrograms(ctx context.Context) (pgrams []program.Program, ok bool)
}

// ストリームを再生するメディアエンジン
type Player interface {
	SetSource(ctx context.Context, url string) error
	Play()
	Pause()
	TogglePlayPause()
	IsPlaying() bool

	// ライブ（最新位置）に飛ぶ
	SeekToLive(ctx context.Context) error

	Position() time.Duration
	State() playback.State

	// 状態変化の通知を購読する
	// cancel を呼ぶとチャネルは close される
	Subscribe() (events <-chan playback.Events, cancel func())

	Close() error
}

type HistoryPersistence interface {
	Save(ctx context.Context, entry history.Entry) error

	// 新しい順に最大 limit 件
	// 返されるエラー
	// - errutil.ErrDatabaseNotFoundHistory
	LoadRecent(ctx context.Context, limit int) ([]history.Entry, error)

	// before より前に聴いた記録を消し、消した件数を返す
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// 今流れている曲・放送中の番組の変化を外部に知らせる
// nil は「値なし」
type Notifier interface {
	NotifyNowPlaying(ctx context.Context, np *nowplaying.NowPlaying) error
	NotifyProgram(ctx context.Context, pgram *program.Program) error
}
