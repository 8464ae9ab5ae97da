package wappuradio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/internal/errutil"
)

// GET して JSON を v にデコードする
// 返されるエラー
// - errutil.ErrHTTPRequest（接続失敗・タイムアウト・本文の読み込みが止まったなど）
// - errutil.ErrHTTPStatusNotOK（2xx 以外）
// - errutil.ErrJSONDecode
func (c *client) get(ctx context.Context, url string, v any) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(errutil.ErrHTTPRequest, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errutil.ErrHTTPRequest, err.Error())
	}
	defer res.Body.Close()

	// ResponseHeaderTimeout はヘッダまでしか見ないので、本文の読み込みはここで見張る
	var body io.Reader = res.Body
	var idle *idleTimeoutReader
	if c.readTimeout > 0 {
		idle = newIdleTimeoutReader(res.Body, c.readTimeout, cancel)
		defer idle.Stop()
		body = idle
	}

	if res.StatusCode < 200 || 300 <= res.StatusCode {
		// keep-alive を効かせるため読み捨てる
		_, _ = io.Copy(io.Discard, body)
		return errors.Wrapf(errutil.ErrHTTPStatusNotOK, "http status is %s", res.Status)
	}

	decoder := json.NewDecoder(body)
	if c.disallowUnknownFields {
		decoder.DisallowUnknownFields()
	}
	err = decoder.Decode(v)
	if err != nil {
		if idle != nil && idle.TimedOut() {
			return errors.Wrapf(errutil.ErrHTTPRequest, "read timed out after %s: %s", c.readTimeout, err)
		}
		return errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}
	return nil
}

// get の失敗をすべて「値なし」に潰す
// 2xx 以外は warn、それ以外の失敗は error でログに残す
// この層ではリトライしない
func fetch[T any](ctx context.Context, c *client, url string) (T, bool) {
	var v T
	err := c.get(ctx, url, &v)
	if err == nil {
		return v, true
	}

	var zero T
	if errors.Is(err, errutil.ErrHTTPStatusNotOK) {
		log.Ctx(ctx).Warn().Str("url", url).Msgf("error fetching: %s", err)
		return zero, false
	}
	log.Ctx(ctx).Error().Str("url", url).Msgf("error fetching data: %+v", err)
	return zero, false
}
