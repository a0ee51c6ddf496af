// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"fmt"

	"github.com/relabs-tech/motion_node/internal/telemetry"
	"periph.io/x/conn/v3/i2c"
)

// DefaultMPU6050Addr is the device's 7-bit address with AD0 low.
const DefaultMPU6050Addr = 0x68

// Registers the node touches. The full annotated map lives in
// mpu6050_registers.go.
const (
	regAccelXOutH = 0x3B // first of the 14-byte sensor data block
	regPwrMgmt1   = 0x6B
	regWhoAmI     = 0x75
)

// burstLen covers ACCEL_XOUT_H..GYRO_ZOUT_L, including the two
// TEMP_OUT bytes between the accel and gyro blocks.
const burstLen = 14

// Read-status taxonomy for one acquisition cycle. Both are per-cycle
// transport faults: non-fatal, the cycle's data is simply discarded.
var (
	ErrRegisterSelect = errors.New("register select rejected")
	ErrBurstRead      = errors.New("burst read failed")
)

// MPU6050 drives the IMU over an injected register-addressed bus.
// It never opens hardware itself.
type MPU6050 struct {
	bus  i2c.Bus
	addr uint16
}

func NewMPU6050(bus i2c.Bus, addr uint16) *MPU6050 {
	return &MPU6050{bus: bus, addr: addr}
}

// Wake clears the PWR_MGMT_1 sleep bit. The device powers up asleep, so
// this must happen once before sampling. Callers treat failure as
// non-fatal and proceed.
func (d *MPU6050) Wake() error {
	if err := d.bus.Tx(d.addr, []byte{regPwrMgmt1, 0x00}, nil); err != nil {
		return fmt.Errorf("IMU wake (PWR_MGMT_1): %w", err)
	}
	return nil
}

// WhoAmI reads the device identity register (0x68 on an MPU6050).
func (d *MPU6050) WhoAmI() (byte, error) {
	return d.ReadRegister(regWhoAmI)
}

// ReadRegister reads a single register by address.
func (d *MPU6050) ReadRegister(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.bus.Tx(d.addr, []byte{reg}, buf[:]); err != nil {
		return 0, fmt.Errorf("read register 0x%02X: %w", reg, err)
	}
	return buf[0], nil
}

// ReadAll acquires all six axes in one transaction pair: a single-byte
// pointer write selecting ACCEL_XOUT_H, then one 14-byte burst read.
// The burst guarantees the six values come from the same sampling
// instant; six discrete reads would not. On error the returned sample
// is the zero value and must not be used.
func (d *MPU6050) ReadAll() (telemetry.RawSample, error) {
	if err := d.bus.Tx(d.addr, []byte{regAccelXOutH}, nil); err != nil {
		return telemetry.RawSample{}, fmt.Errorf("%w: %v", ErrRegisterSelect, err)
	}

	buf := make([]byte, burstLen)
	if err := d.bus.Tx(d.addr, nil, buf); err != nil {
		return telemetry.RawSample{}, fmt.Errorf("%w: %v", ErrBurstRead, err)
	}

	return parseBurst(buf), nil
}

// parseBurst reconstructs the six big-endian int16 axis values.
// Bytes 6..7 are TEMP_OUT and are skipped.
func parseBurst(buf []byte) telemetry.RawSample {
	be := func(i int) int16 {
		return int16(uint16(buf[i])<<8 | uint16(buf[i+1]))
	}
	return telemetry.RawSample{
		Ax: be(0),
		Ay: be(2),
		Az: be(4),
		Gx: be(8),
		Gy: be(10),
		Gz: be(12),
	}
}
