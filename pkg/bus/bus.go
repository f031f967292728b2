package bus

import (
	"github.com/nats-io/nats.go"
)

// Bus is a thin wrapper around a NATS connection. Publishing is fire and
// forget; subscribers receive raw payloads and do their own decoding.
type Bus struct {
	conn *nats.Conn
}

func Connect(url string) (*Bus, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	return &Bus{conn: conn}, nil
}

func (b *Bus) Publish(subject string, data []byte) error {
	return b.conn.Publish(subject, data)
}

func (b *Bus) Subscribe(subject string, handler func(subject string, data []byte)) (*nats.Subscription, error) {
	return b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
}

func (b *Bus) Close() {
	if b.conn != nil {
		b.conn.Close()
	}
}
