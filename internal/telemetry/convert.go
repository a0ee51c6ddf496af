package telemetry

// Sensitivities for the default full-scale ranges the node configures.
const (
	AccelSensitivity = 16384 // LSB per g at ±2 g
	GyroSensitivity  = 131   // LSB per °/s at ±250 °/s
)

// AccelMilliG converts a raw accelerometer count to milli-g.
// Integer division truncates toward zero; the sub-milli-g bias this
// introduces is accepted for telemetry display.
func AccelMilliG(raw int16) int32 {
	return int32(raw) * 1000 / AccelSensitivity
}

// GyroMilliDPS converts a raw gyroscope count to milli-degrees/second.
func GyroMilliDPS(raw int16) int32 {
	return int32(raw) * 1000 / GyroSensitivity
}

// Scale converts a full raw sample to scaled units. Values that exceed
// the int16 wire width (gyro rates above ~32.7 °/s in milli-units) are
// clamped rather than allowed to wrap.
func Scale(raw RawSample) ScaledSample {
	return ScaledSample{
		Ax: clampInt16(AccelMilliG(raw.Ax)),
		Ay: clampInt16(AccelMilliG(raw.Ay)),
		Az: clampInt16(AccelMilliG(raw.Az)),
		Gx: clampInt16(GyroMilliDPS(raw.Gx)),
		Gy: clampInt16(GyroMilliDPS(raw.Gy)),
		Gz: clampInt16(GyroMilliDPS(raw.Gz)),
	}
}

func clampInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
