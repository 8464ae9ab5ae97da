package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sobadon/wappuradio/domain/model/history"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/internal/errutil"
	mock_repository "github.com/sobadon/wappuradio/testdata/mock/domain/repository"
)

func Test_ucHistory_Record(t *testing.T) {
	now := time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastSong string
		np       *nowplaying.NowPlaying
		prepare  func(p *mock_repository.MockHistoryPersistence)
		want     bool
		wantErr  bool
	}{
		{
			name: "新しい曲は保存する",
			np:   &nowplaying.NowPlaying{Song: "Popeda - Kuuma kesä"},
			prepare: func(p *mock_repository.MockHistoryPersistence) {
				p.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry history.Entry) error {
					want := history.Entry{Song: "Popeda - Kuuma kesä", HeardAt: now}
					if diff := cmp.Diff(want, entry, cmpopts.IgnoreFields(history.Entry{}, "UUID")); diff != "" {
						t.Errorf("saved entry mismatch (-want +got):\n%s", diff)
					}
					if entry.UUID == "" {
						t.Error("UUID is empty")
					}
					return nil
				})
			},
			want: true,
		},
		{
			name:     "直前と同じ曲は保存しない",
			lastSong: "Popeda - Kuuma kesä",
			np:       &nowplaying.NowPlaying{Song: "Popeda - Kuuma kesä"},
			prepare:  func(p *mock_repository.MockHistoryPersistence) {},
			want:     false,
		},
		{
			name:    "取得失敗（nil）は保存しない",
			np:      nil,
			prepare: func(p *mock_repository.MockHistoryPersistence) {},
			want:    false,
		},
		{
			name: "保存に失敗したらエラー",
			np:   &nowplaying.NowPlaying{Song: "Eppu Normaali - Poliisi pamputtaa taas"},
			prepare: func(p *mock_repository.MockHistoryPersistence) {
				p.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.Wrap(errutil.ErrDatabaseQuery, "disk I/O error"))
			},
			want:    false,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p := mock_repository.NewMockHistoryPersistence(ctrl)
			tt.prepare(p)

			u := NewHistory(p, clockwork.NewFakeClockAt(now))
			u.lastSong = tt.lastSong

			got, err := u.Record(context.Background(), tt.np)
			if (err != nil) != tt.wantErr {
				t.Errorf("ucHistory.Record() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ucHistory.Record() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ucHistory_Watch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mock_repository.NewMockHistoryPersistence(ctrl)
	var saved []string
	p.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry history.Entry) error {
		saved = append(saved, entry.Song)
		return nil
	}).Times(3)

	updates := make(chan *nowplaying.NowPlaying, 6)
	updates <- &nowplaying.NowPlaying{Song: "a"}
	updates <- &nowplaying.NowPlaying{Song: "a"}
	updates <- nil
	updates <- &nowplaying.NowPlaying{Song: "b"}
	updates <- &nowplaying.NowPlaying{Song: "a"}
	close(updates)

	u := NewHistory(p, clockwork.NewFakeClock())
	err := u.Watch(context.Background(), updates)
	if err != nil {
		t.Errorf("ucHistory.Watch() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, saved); diff != "" {
		t.Errorf("saved songs mismatch (-want +got):\n%s", diff)
	}
}

func Test_ucHistory_Prune(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	p := mock_repository.NewMockHistoryPersistence(ctrl)
	p.EXPECT().DeleteBefore(gomock.Any(), now.Add(-720*time.Hour)).Return(int64(12), nil)

	u := NewHistory(p, clockwork.NewFakeClockAt(now))
	if err := u.Prune(context.Background(), 720*time.Hour); err != nil {
		t.Errorf("ucHistory.Prune() error = %v", err)
	}
}
