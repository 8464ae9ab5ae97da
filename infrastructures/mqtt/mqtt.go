package mqtt

import (
	"context"
	"encoding/json"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/internal/errutil"
)

const (
	topicNowPlaying = "nowplaying"
	topicProgram    = "program"

	// 後から購読したクライアントにも最新の値を届ける
	retained = true
	qos      = 1

	connectTimeout    = 10 * time.Second
	disconnectQuiesce = 250
)

type Config struct {
	Broker      string
	ClientID    string
	TopicPrefix string
}

// Publish だけ使う
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

type notifier struct {
	client      publisher
	disconnect  func()
	topicPrefix string
}

type nowPlayingPayload struct {
	Song string `json:"song"`
}

type programPayload struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Title     string    `json:"title"`
	Host      string    `json:"host"`
	Prod      string    `json:"prod"`
	Desc      string    `json:"desc"`
	Photo     string    `json:"photo"`
	Thumb     string    `json:"thumb"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
}

// ブローカーに接続する
// 切断されても paho が自動で再接続する
func New(ctx context.Context, cfg Config) (*notifier, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.OnConnect = func(paho.Client) {
		log.Ctx(ctx).Info().Msgf("connected to mqtt broker (broker = %s)", cfg.Broker)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Ctx(ctx).Warn().Msgf("mqtt connection lost: %s", err)
	}

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, errors.Wrapf(errutil.ErrMQTT, "connect timed out (broker = %s)", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, errors.Wrap(errutil.ErrMQTT, err.Error())
	}

	return &notifier{
		client:      client,
		disconnect:  func() { client.Disconnect(disconnectQuiesce) },
		topicPrefix: cfg.TopicPrefix,
	}, nil
}

func (n *notifier) Close() {
	if n.disconnect != nil {
		n.disconnect()
	}
}

// nil なら空のペイロードを送り、保持されているメッセージを消す
func (n *notifier) NotifyNowPlaying(ctx context.Context, np *nowplaying.NowPlaying) error {
	var payload []byte
	if np != nil {
		b, err := json.Marshal(nowPlayingPayload{Song: np.Song})
		if err != nil {
			return errors.Wrap(errutil.ErrMQTT, err.Error())
		}
		payload = b
	}
	return n.publish(ctx, topicNowPlaying, payload)
}

func (n *notifier) NotifyProgram(ctx context.Context, pgram *program.Program) error {
	var payload []byte
	if pgram != nil {
		b, err := json.Marshal(programToPayload(*pgram))
		if err != nil {
			return errors.Wrap(errutil.ErrMQTT, err.Error())
		}
		payload = b
	}
	return n.publish(ctx, topicProgram, payload)
}

func (n *notifier) topic(name string) string {
	if n.topicPrefix == "" {
		return name
	}
	return n.topicPrefix + "/" + name
}

func (n *notifier) publish(ctx context.Context, name string, payload []byte) error {
	topic := n.topic(name)
	token := n.client.Publish(topic, qos, retained, payload)

	select {
	case <-ctx.Done():
		return errors.Wrap(errutil.ErrMQTT, ctx.Err().Error())
	case <-token.Done():
	}
	if err := token.Error(); err != nil {
		return errors.Wrapf(errutil.ErrMQTT, "publish %s: %s", topic, err)
	}

	log.Ctx(ctx).Debug().Msgf("published (topic = %s, bytes = %d)", topic, len(payload))
	return nil
}

func programToPayload(pgram program.Program) programPayload {
	return programPayload{
		ID:        pgram.ID,
		Start:     pgram.Start,
		End:       pgram.End,
		Title:     pgram.Title,
		Host:      pgram.Host,
		Prod:      pgram.Prod,
		Desc:      pgram.Desc,
		Photo:     pgram.Photo,
		Thumb:     pgram.Thumb,
		Timestamp: pgram.Timestamp,
		Name:      pgram.Name,
	}
}
