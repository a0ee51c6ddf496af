// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"

	"github.com/relabs-tech/motion_node/internal/config"
	"github.com/relabs-tech/motion_node/internal/sensors"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// RunRegisterDebug dumps every register in the MPU6050 map with its
// name, current value, and description. Standalone diagnostic; it wakes
// the device first so the data registers are live.
func RunRegisterDebug() error {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("open I2C bus %q: %w", cfg.I2CBus, err)
	}
	defer bus.Close()

	drv := sensors.NewMPU6050(bus, cfg.IMUAddr)
	if err := drv.Wake(); err != nil {
		log.Printf("Warning: IMU wake failed: %v", err)
	}

	fmt.Printf("MPU6050 register dump (device 0x%02X)\n", cfg.IMUAddr)
	fmt.Println("ADDR  VALUE  NAME          DESCRIPTION")

	for _, reg := range sensors.GetMPU6050RegisterMap() {
		var addrByte byte
		if _, err := fmt.Sscanf(reg.Address, "0x%X", &addrByte); err != nil {
			log.Printf("register_debug: bad address in map: %s", reg.Address)
			continue
		}

		value, err := drv.ReadRegister(addrByte)
		if err != nil {
			fmt.Printf("%s  ERROR  %-12s  %v\n", reg.Address, reg.Name, err)
			continue
		}

		fmt.Printf("%s  0x%02X   %-12s  %s\n", reg.Address, value, reg.Name, reg.Description)
		for _, bf := range reg.BitFields {
			fmt.Printf("      bits %-4s %s: %s\n", bf.Bits, bf.Name, bf.Description)
		}
	}

	return nil
}
