package telemetry

import "encoding/binary"

// RawSample is one un-scaled IMU reading in register order:
// accelerometer XYZ then gyroscope XYZ, in sensor LSB counts.
type RawSample struct {
	Ax int16 `json:"ax"` // accel
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`

	Gx int16 `json:"gx"` // gyro
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`
}

// ScaledSample carries the same six axes converted to fixed-point
// physical units: milli-g for the accelerometer, milli-°/s for the
// gyroscope. Axis ordering is identical to RawSample and to the wire
// payload; consumers rely on that order, not on field names.
type ScaledSample struct {
	Ax int16 `json:"ax"` // milli-g
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`

	Gx int16 `json:"gx"` // milli-°/s
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`
}

// WirePayloadLen is the size of the notification payload: six int16 values.
const WirePayloadLen = 12

// WirePayload encodes the sample as six little-endian int16 values,
// accel XYZ then gyro XYZ. Little-endian matches what BLE clients of the
// original MCU firmware already decode.
func (s ScaledSample) WirePayload() []byte {
	buf := make([]byte, WirePayloadLen)
	for i, v := range [6]int16{s.Ax, s.Ay, s.Az, s.Gx, s.Gy, s.Gz} {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	return buf
}
