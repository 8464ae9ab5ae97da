// Package httpapi は最新の曲と番組をローカルに配る HTTP API
//
// 上流（wappuradio.fi）の API と同じ形の JSON を返すので、
// 同じネットワーク内のクライアントは上流を叩かずに済む。
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/internal/latest"
)

const shutdownTimeout = 5 * time.Second

type nowPlayingResponse struct {
	Song string `json:"song"`
}

type programResponse struct {
	ID        string `json:"id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Title     string `json:"title"`
	Host      string `json:"host"`
	Prod      string `json:"prod"`
	Desc      string `json:"desc"`
	Photo     string `json:"photo"`
	Thumb     string `json:"thumb"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
}

type handler struct {
	nowPlaying *latest.Cell[*nowplaying.NowPlaying]
	current    *latest.Cell[*program.Program]
}

func NewRouter(logger zerolog.Logger, nowPlaying *latest.Cell[*nowplaying.NowPlaying], current *latest.Cell[*program.Program]) *gin.Engine {
	h := &handler{
		nowPlaying: nowPlaying,
		current:    current,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", h.healthz)
	api := r.Group("/api")
	api.GET("/nowplaying", h.getNowPlaying)
	api.GET("/programs/current", h.getCurrentProgram)
	return r
}

func (h *handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// まだ取れていない、または取得に失敗しているときは 204
func (h *handler) getNowPlaying(c *gin.Context) {
	np := h.nowPlaying.Get()
	if np == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, nowPlayingResponse{Song: np.Song})
}

func (h *handler) getCurrentProgram(c *gin.Context) {
	pgram := h.current.Get()
	if pgram == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, programToResponse(*pgram))
}

func programToResponse(pgram program.Program) programResponse {
	return programResponse{
		ID:        pgram.ID,
		Start:     formatTime(pgram.Start),
		End:       formatTime(pgram.End),
		Title:     pgram.Title,
		Host:      pgram.Host,
		Prod:      pgram.Prod,
		Desc:      pgram.Desc,
		Photo:     pgram.Photo,
		Thumb:     pgram.Thumb,
		Timestamp: formatTime(pgram.Timestamp),
		Name:      pgram.Name,
	}
}

// ゼロ値は空文字にする
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

// ctx がキャンセルされるまで待ち受ける
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Ctx(ctx).Info().Msgf("http api listening (addr = %s)", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	if err != nil {
		return errors.WithStack(err)
	}
	log.Ctx(ctx).Info().Msg("http api stopped")
	return ctx.Err()
}
