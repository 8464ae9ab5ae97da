package wappuradio

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
)

// {"song": "Artist - Title", ...}
// song 以外のフィールドは使わない
type wappuradioNowPlaying struct {
	Song string `json:"song"`
}

func (c *client) GetNowPlaying(ctx context.Context) *nowplaying.NowPlaying {
	log.Ctx(ctx).Debug().Msg("fetch now playing ...")
	wnp, ok := fetch[wappuradioNowPlaying](ctx, c, c.baseURL+nowPlayingPath)
	if !ok {
		return nil
	}
	np := wappuradioNowPlayingToNowPlaying(wnp)
	return &np
}

func wappuradioNowPlayingToNowPlaying(wnp wappuradioNowPlaying) nowplaying.NowPlaying {
	return nowplaying.NowPlaying{
		Song: wnp.Song,
	}
}
