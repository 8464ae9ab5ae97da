package wappuradio

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/program"
)

type wappuradioProgram struct {
	// "1234"
	ID string `json:"id"`

	// ISO 8601
	// "2025-04-20T06:00:00.000Z"
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Title string `json:"title"`

	// 出演者
	// カンマ区切りで複数人のこともある
	Host string `json:"host"`

	// プロデューサー
	Prod string `json:"prod"`

	// 改行を含む
	Desc string `json:"desc"`

	// 画像 URL
	// 無いときは空文字 or null
	Photo string `json:"photo"`
	Thumb string `json:"thumb"`

	Timestamp time.Time `json:"timestamp"`

	Name string `json:"name"`
}

func (c *client) GetPrograms(ctx context.Context) ([]program.Program, bool) {
	log.Ctx(ctx).Debug().Msg("fetch programs ...")
	wpgrams, ok := fetch[[]wappuradioProgram](ctx, c, c.baseURL+programsPath)
	if !ok {
		return nil, false
	}

	pgrams := make([]program.Program, 0, len(wpgrams))
	for _, wpgram := range wpgrams {
		pgrams = append(pgrams, wappuradioProgramToProgram(wpgram))
	}

	log.Ctx(ctx).Info().Msgf("successfully fetched programs (len = %d)", len(pgrams))
	return pgrams, true
}

func wappuradioProgramToProgram(wpgram wappuradioProgram) program.Program {
	return program.Program{
		ID:        wpgram.ID,
		Start:     wpgram.Start,
		End:       wpgram.End,
		Title:     wpgram.Title,
		Host:      wpgram.Host,
		Prod:      wpgram.Prod,
		Desc:      wpgram.Desc,
		Photo:     wpgram.Photo,
		Thumb:     wpgram.Thumb,
		Timestamp: wpgram.Timestamp,
		Name:      wpgram.Name,
	}
}
