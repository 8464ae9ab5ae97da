package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/internal/fileutil"
)

func init() {
	zerolog.CallerMarshalFunc = func(file string, line int) string {
		filename := filepath.Base(file)
		return filename + ":" + strconv.Itoa(line)
	}
}

func NewLogger() zerolog.Logger {
	return log.With().Caller().Logger()
}

// level は zerolog のレベル名（debug, info, ...）
// 解釈できなければ debug にしておく
func SetLevel(level string) {
	lv, err := zerolog.ParseLevel(level)
	if err != nil || lv == zerolog.NoLevel {
		lv = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lv)
}

// TUI 実行中は stdout が画面そのものなので、ログは別の出力先に逃がす
// path が空ならば捨てる
func RedirectToFile(path string) (io.Closer, error) {
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return io.NopCloser(nil), nil
	}

	err := fileutil.MkdirParentIfNotExist(path)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
