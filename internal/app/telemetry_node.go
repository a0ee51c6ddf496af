package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/motion_node/internal/config"
	"github.com/relabs-tech/motion_node/internal/publish"
	"github.com/relabs-tech/motion_node/internal/sensors"
	"github.com/relabs-tech/motion_node/internal/telemetry"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// rawReader is the slice of the driver the acquisition loop needs.
type rawReader interface {
	ReadAll() (telemetry.RawSample, error)
}

// telemetryNode drives one acquisition/publish cycle at a time. It is
// the only writer of the buffer; publishers read snapshots from their
// own contexts.
type telemetryNode struct {
	reader rawReader
	buf    *telemetry.Buffer
	pubs   []publish.Publisher
}

// cycle runs one read→convert→publish pass. A failed read leaves the
// buffer stale but still publishes, trading freshness for availability.
// There is no retry within a cycle.
func (n *telemetryNode) cycle(now time.Time) {
	raw, err := n.reader.ReadAll()
	switch {
	case err == nil:
		n.buf.Update(telemetry.Scale(raw), now)
	case errors.Is(err, sensors.ErrRegisterSelect):
		n.buf.MarkStale()
		log.Printf("IMU register select failed: %v", err)
	case errors.Is(err, sensors.ErrBurstRead):
		n.buf.MarkStale()
		log.Printf("IMU burst read failed: %v", err)
	default:
		n.buf.MarkStale()
		log.Printf("IMU read error: %v", err)
	}

	snap := n.buf.Snapshot()
	for _, p := range n.pubs {
		if err := p.Notify(snap); err != nil {
			log.Printf("publish error: %v", err)
		}
	}
}

// RunTelemetryNode brings up the node and runs the acquisition loop
// until the process is killed. Initialization order: wireless and MQTT
// publishers, then the IMU, then the one-shot bus scan; every step is
// non-fatal, the loop always starts.
func RunTelemetryNode() error {
	log.Println("starting motion-node telemetry producer")

	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("open I2C bus %q: %w", cfg.I2CBus, err)
	}
	defer bus.Close()

	// Publishers: BLE carries the notification stream the node exists
	// for; MQTT feeds the console/web/display tools.
	var pubs []publish.Publisher
	if cfg.BLEEnabled {
		pubs = append(pubs, publish.NewBLEPublisher(cfg.BLEName))
	}
	pubs = append(pubs, publish.NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientIDNode, cfg.TopicTelemetry))

	for _, p := range pubs {
		if err := p.Init(); err != nil {
			log.Printf("WARNING: publisher init failed (continuing without it): %v", err)
		}
	}
	defer func() {
		for _, p := range pubs {
			p.Close()
		}
	}()

	// IMU bring-up: wake from power-on sleep. Non-fatal; a dead bus
	// yields a continuously stale telemetry stream instead of a halt.
	drv := sensors.NewMPU6050(bus, cfg.IMUAddr)
	if err := drv.Wake(); err != nil {
		log.Printf("WARNING: IMU wake failed (continuing): %v", err)
	} else if id, err := drv.WhoAmI(); err != nil {
		log.Printf("WARNING: IMU identity read failed: %v", err)
	} else {
		log.Printf("IMU awake, WHO_AM_I = 0x%02X", id)
	}

	// One-shot diagnostic scan; logged, never gates the loop.
	if cfg.ScanOnStartup {
		found := sensors.Scan(bus)
		if len(found) == 0 {
			log.Println("bus scan: no devices responded")
		}
		for _, addr := range found {
			log.Printf("bus scan: device found at 0x%02X", addr)
		}
	}

	node := &telemetryNode{
		reader: drv,
		buf:    &telemetry.Buffer{},
		pubs:   pubs,
	}

	log.Printf("entering acquisition loop (period %dms)", cfg.SampleInterval)

	ticker := time.NewTicker(time.Duration(cfg.SampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		node.cycle(t)

		snap := node.buf.Snapshot()
		log.Printf("%s tick: accel ax=%d ay=%d az=%d | gyro gx=%d gy=%d gz=%d | stale=%v failures=%d",
			t.Format(time.RFC3339),
			snap.Sample.Ax, snap.Sample.Ay, snap.Sample.Az,
			snap.Sample.Gx, snap.Sample.Gy, snap.Sample.Gz,
			snap.Stale, snap.Failures,
		)
	}
	return nil
}
