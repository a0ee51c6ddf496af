package publish

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/relabs-tech/motion_node/internal/telemetry"
)

// MQTTPublisher publishes the full snapshot (sample + freshness status)
// as retained JSON so the console, web, and display tools pick up the
// latest state on subscribe.
type MQTTPublisher struct {
	broker   string
	clientID string
	topic    string
	client   mqtt.Client
	ready    bool
}

func NewMQTTPublisher(broker, clientID, topic string) *MQTTPublisher {
	return &MQTTPublisher{broker: broker, clientID: clientID, topic: topic}
}

func (p *MQTTPublisher) Init() error {
	opts := mqtt.NewClientOptions().
		AddBroker(p.broker).
		SetClientID(p.clientID)

	p.client = mqtt.NewClient(opts)
	if token := p.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connect (%s): %w", p.broker, token.Error())
	}
	p.ready = true
	return nil
}

func (p *MQTTPublisher) Notify(snap telemetry.Snapshot) error {
	if !p.ready {
		return nil
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}
	if token := p.client.Publish(p.topic, 0, true, payload); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT publish (%s): %w", p.topic, token.Error())
	}
	return nil
}

func (p *MQTTPublisher) Close() {
	if p.ready {
		p.client.Disconnect(250)
	}
}
