// Package announce publishes prayer-boundary transitions over MQTT so
// downstream consumers (displays, notifiers) can react without polling the
// HTTP API. Delivery beyond the broker is someone else's problem.
package announce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/imanhub/solat-server/internal/clock"
	"github.com/imanhub/solat-server/internal/fetch"
)

// Publisher is the outbound edge; the MQTT client satisfies it and tests
// substitute a recorder.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("mqtt connection lost")
}

// NewMQTTPublisher connects to the broker and returns a Publisher over it.
func NewMQTTPublisher(brokerURL, clientID string) (Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	log.Info().Str("broker", brokerURL).Msg("mqtt publisher connected")
	return &mqttPublisher{client: client}, nil
}

func (p *mqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

// Transition is the payload published when a zone crosses into a new prayer
// window.
type Transition struct {
	Zone   string `json:"zone"`
	Prayer string `json:"prayer"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}

// Watcher polls the schedule for a set of zones and publishes once per
// boundary crossing.
type Watcher struct {
	fetcher fetch.Interface
	pub     Publisher
	zones   []string
	loc     *time.Location

	last map[string]string // zone -> current prayer at previous tick
}

func NewWatcher(fetcher fetch.Interface, pub Publisher, zones []string, loc *time.Location) *Watcher {
	return &Watcher{
		fetcher: fetcher,
		pub:     pub,
		zones:   zones,
		loc:     loc,
		last:    make(map[string]string),
	}
}

// Run ticks once per interval until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick(ctx, time.Now().In(w.loc))
		}
	}
}

// Tick checks every watched zone once and publishes any transitions.
func (w *Watcher) Tick(ctx context.Context, now time.Time) {
	for _, zone := range w.zones {
		s, err := w.fetcher.Fetch(ctx, zone, now)
		if err != nil {
			log.Warn().Err(err).Str("zone", zone).Msg("announce tick skipped zone")
			continue
		}
		cur, _ := clock.CurrentAndNext(s, now)
		if w.last[zone] == cur.Name {
			continue
		}
		prev, seen := w.last[zone]
		w.last[zone] = cur.Name
		if !seen {
			// first observation is startup state, not a boundary crossing
			continue
		}

		payload, _ := json.Marshal(Transition{
			Zone:   zone,
			Prayer: cur.Name,
			Time:   cur.Time,
			Date:   s.Date,
		})
		topic := fmt.Sprintf("solat/%s/adhan", zone)
		if err := w.pub.Publish(topic, payload); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("announce publish failed")
			// retry on next tick
			w.last[zone] = prev
			continue
		}
		log.Info().Str("zone", zone).Str("prayer", cur.Name).Msg("published prayer transition")
	}
}
