package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/history"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/repository"
)

type ucHistory struct {
	historyPersistence repository.HistoryPersistence
	clock              clockwork.Clock

	// 直前に保存した曲
	// Watch からしか触らない
	lastSong string
}

func NewHistory(historyPersistence repository.HistoryPersistence, clock clockwork.Clock) *ucHistory {
	return &ucHistory{
		historyPersistence: historyPersistence,
		clock:              clock,
	}
}

// 新しい曲であれば記録する
// 取得失敗（nil）と、直前と同じ曲は記録しない
// 記録したら true
func (u *ucHistory) Record(ctx context.Context, np *nowplaying.NowPlaying) (bool, error) {
	if np == nil || np.Song == "" || np.Song == u.lastSong {
		return false, nil
	}

	entry := history.Entry{
		UUID:    uuid.NewString(),
		Song:    np.Song,
		HeardAt: u.clock.Now(),
	}
	err := u.historyPersistence.Save(ctx, entry)
	if err != nil {
		return false, err
	}

	u.lastSong = np.Song
	log.Ctx(ctx).Info().Msgf("new song: %s", np.Song)
	return true, nil
}

// Now-Playing の購読チャネルを読み続けて記録する
// チャネルが閉じられるか ctx がキャンセルされたら戻る
// 保存の失敗はログに残して続ける
func (u *ucHistory) Watch(ctx context.Context, updates <-chan *nowplaying.NowPlaying) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case np, ok := <-updates:
			if !ok {
				return nil
			}
			_, err := u.Record(ctx, np)
			if err != nil {
				log.Ctx(ctx).Error().Msgf("%+v", err)
			}
		}
	}
}

func (u *ucHistory) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	return u.historyPersistence.LoadRecent(ctx, limit)
}

// retention より古い記録を消す
func (u *ucHistory) Prune(ctx context.Context, retention time.Duration) error {
	before := u.clock.Now().Add(-retention)
	deleted, err := u.historyPersistence.DeleteBefore(ctx, before)
	if err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msgf("pruned history (deleted = %d, before = %s)", deleted, before.Format(time.RFC3339))
	return nil
}
