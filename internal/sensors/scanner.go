package sensors

import "periph.io/x/conn/v3/i2c"

// The inclusive 7-bit address range assignable to peripherals; addresses
// outside it are reserved by the I2C specification.
const (
	ScanFirstAddr = 0x03
	ScanLastAddr  = 0x77
)

// Scan probes every peripheral address with a zero-length write and
// returns the acknowledging addresses in ascending order. A bus with no
// responders yields an empty result. This is a boot-time diagnostic
// only; callers log the result and never let it gate acquisition.
func Scan(bus i2c.Bus) []uint16 {
	var found []uint16
	for addr := uint16(ScanFirstAddr); addr <= ScanLastAddr; addr++ {
		if err := bus.Tx(addr, nil, nil); err == nil {
			found = append(found, addr)
		}
	}
	return found
}
