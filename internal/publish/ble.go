package publish

import (
	"fmt"
	"log"

	"github.com/relabs-tech/motion_node/internal/telemetry"
	"tinygo.org/x/bluetooth"
)

// Custom 128-bit UUIDs for the motion telemetry service and its notify
// characteristic.
var (
	telemetryServiceUUID = bluetooth.NewUUID([16]byte{
		0x6e, 0x40, 0x00, 0x01, 0xb5, 0xa3, 0xf3, 0x93,
		0xe0, 0xa9, 0xe5, 0x0e, 0x24, 0xdc, 0xca, 0x9e})
	telemetryCharUUID = bluetooth.NewUUID([16]byte{
		0x6e, 0x40, 0x00, 0x02, 0xb5, 0xa3, 0xf3, 0x93,
		0xe0, 0xa9, 0xe5, 0x0e, 0x24, 0xdc, 0xca, 0x9e})
)

// BLEPublisher notifies subscribers of each cycle's sample over a GATT
// characteristic. The payload is the 12-byte wire encoding; status and
// staleness travel on the MQTT side only, matching what BLE clients of
// the MCU firmware already expect.
type BLEPublisher struct {
	localName string
	adapter   *bluetooth.Adapter
	char      bluetooth.Characteristic
	ready     bool
}

func NewBLEPublisher(localName string) *BLEPublisher {
	return &BLEPublisher{localName: localName}
}

// Init brings up the BLE stack, registers the telemetry service, and
// starts advertising.
func (p *BLEPublisher) Init() error {
	p.adapter = bluetooth.DefaultAdapter
	if err := p.adapter.Enable(); err != nil {
		return fmt.Errorf("enable BLE stack: %w", err)
	}

	if err := p.adapter.AddService(&bluetooth.Service{
		UUID: telemetryServiceUUID,
		Characteristics: []bluetooth.CharacteristicConfig{{
			Handle: &p.char,
			UUID:   telemetryCharUUID,
			Value:  make([]byte, telemetry.WirePayloadLen),
			Flags:  bluetooth.CharacteristicReadPermission | bluetooth.CharacteristicNotifyPermission,
		}},
	}); err != nil {
		return fmt.Errorf("add telemetry service: %w", err)
	}

	adv := p.adapter.DefaultAdvertisement()
	if err := adv.Configure(bluetooth.AdvertisementOptions{
		LocalName:    p.localName,
		ServiceUUIDs: []bluetooth.UUID{telemetryServiceUUID},
	}); err != nil {
		return fmt.Errorf("configure advertisement: %w", err)
	}
	if err := adv.Start(); err != nil {
		return fmt.Errorf("start advertising: %w", err)
	}

	log.Printf("ble: advertising as %q", p.localName)
	p.ready = true
	return nil
}

// Notify writes the sample to the characteristic, which pushes it to all
// subscribed centrals. Delivery guarantees are the stack's concern.
func (p *BLEPublisher) Notify(snap telemetry.Snapshot) error {
	if !p.ready {
		return nil
	}
	if _, err := p.char.Write(snap.Sample.WirePayload()); err != nil {
		return fmt.Errorf("ble notify: %w", err)
	}
	return nil
}

func (p *BLEPublisher) Close() {}
