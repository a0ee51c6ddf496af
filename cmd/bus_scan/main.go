// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/motion_node/internal/sensors"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	busName := flag.String("bus", "", "I2C bus name (empty = first available)")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalf("periph host init: %v", err)
	}

	bus, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("open I2C bus %q: %v", *busName, err)
	}
	defer bus.Close()

	log.Printf("scanning %s (0x%02X-0x%02X)...", bus, sensors.ScanFirstAddr, sensors.ScanLastAddr)

	found := sensors.Scan(bus)
	for _, addr := range found {
		log.Printf("device found at 0x%02X", addr)
	}
	log.Printf("scan done, %d device(s)", len(found))
}
