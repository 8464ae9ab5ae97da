package wappuradio

import (
	"net"
	"net/http"
	"time"

	"github.com/sobadon/wappuradio/domain/repository"
)

const (
	nowPlayingPath = "/api/nowplaying"
	programsPath   = "/api/programs"
)

type Config struct {
	// https://wappuradio.fi のようにパスなし
	BaseURL string

	// 接続確立までのタイムアウト
	ConnectTimeout time.Duration

	// 読み込みのタイムアウト
	// レスポンスヘッダが返るまでと、本文の読み込みが進まない時間の両方に効く
	ReadTimeout time.Duration

	// true ならば知らないフィールドを含む JSON をエラーにする
	// 配信元のフィールド追加で壊れないよう、普段は false
	DisallowUnknownFields bool
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://wappuradio.fi",
		ConnectTimeout: 30 * time.Second,
		ReadTimeout:    30 * time.Second,
	}
}

type client struct {
	httpClient            *http.Client
	baseURL               string
	readTimeout           time.Duration
	disallowUnknownFields bool
}

// Now-Playing と番組表とで別々のインスタンスを使う想定
// （http.Client を共有しない）
func New(config Config) repository.Station {
	dialer := &net.Dialer{
		Timeout: config.ConnectTimeout,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   config.ConnectTimeout,
		ResponseHeaderTimeout: config.ReadTimeout,
		IdleConnTimeout:       90 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &client{
		httpClient: &http.Client{
			Transport: transport,
		},
		baseURL:               config.BaseURL,
		readTimeout:           config.ReadTimeout,
		disallowUnknownFields: config.DisallowUnknownFields,
	}
}
