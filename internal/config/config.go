package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sobadon/wappuradio/internal/errutil"
)

const Prefix = "WR_"

type Config struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"https://wappuradio.fi"`
	StreamURL      string        `env:"STREAM_URL" envDefault:"https://stream1.wappuradio.fi/wappuradio.mp3"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	StrictJSON     bool          `env:"STRICT_JSON" envDefault:"false"`

	// 空ならば履歴を保存しない
	SqlitePath       string        `env:"SQLITE_PATH" envDefault:"history.sqlite3"`
	HistoryRetention time.Duration `env:"HISTORY_RETENTION" envDefault:"720h"`

	// 空ならば中継 API を立てない
	HTTPAddr string `env:"HTTP_ADDR"`

	// 空ならば MQTT に流さない
	MQTTBroker      string `env:"MQTT_BROKER"`
	MQTTClientID    string `env:"MQTT_CLIENT_ID" envDefault:"wappuradio"`
	MQTTTopicPrefix string `env:"MQTT_TOPIC_PREFIX" envDefault:"wappuradio"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
	LogFile  string `env:"LOG_FILE"`
}

// .env があれば読み込んだうえで環境変数から設定を組み立てる
// 既に環境変数に設定されている値は .env で上書きされない
func Load(logger zerolog.Logger, dotenvPaths ...string) (Config, error) {
	for _, p := range dotenvPaths {
		err := godotenv.Load(p)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrap(errutil.ErrConfig, err.Error())
		}
	}

	var config Config
	err := env.Parse(&config, env.Options{
		Prefix: Prefix,
		OnSet: func(tag string, value interface{}, isDefault bool) {
			logger.Debug().Msgf("Set %s to %v (default? %v)", tag, value, isDefault)
		},
	})
	if err != nil {
		return Config{}, errors.Wrap(errutil.ErrConfig, err.Error())
	}
	return config, nil
}
