package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/motion_node/internal/config"
	"github.com/relabs-tech/motion_node/internal/telemetry"
)

// RunConsoleMQTT subscribes to the telemetry topic and prints each
// snapshot as one line until interrupted. This is the diagnostic sink:
// line-oriented text, no structured format.
func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicTelemetry, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var snap telemetry.Snapshot
		if err := json.Unmarshal(msg.Payload(), &snap); err != nil {
			log.Printf("console: telemetry unmarshal error: %v", err)
			return
		}

		tag := "     "
		if snap.Stale {
			tag = fmt.Sprintf("STALE x%d", snap.Failures)
		}
		fmt.Printf(
			"[IMU ] ax=%6d ay=%6d az=%6d  gx=%6d gy=%6d gz=%6d  %s\n",
			snap.Sample.Ax, snap.Sample.Ay, snap.Sample.Az,
			snap.Sample.Gx, snap.Sample.Gy, snap.Sample.Gz,
			tag,
		)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicTelemetry)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
