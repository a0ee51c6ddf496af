package telemetry

import (
	"bytes"
	"testing"
)

func TestWirePayloadOrderAndEncoding(t *testing.T) {
	s := ScaledSample{Ax: 1000, Ay: -1000, Az: 1, Gx: -1, Gy: 256, Gz: -32768}

	payload := s.WirePayload()
	if len(payload) != WirePayloadLen {
		t.Fatalf("payload length %d, want %d", len(payload), WirePayloadLen)
	}

	// Little-endian int16, accel XYZ then gyro XYZ.
	want := []byte{
		0xE8, 0x03, // 1000
		0x18, 0xFC, // -1000
		0x01, 0x00, // 1
		0xFF, 0xFF, // -1
		0x00, 0x01, // 256
		0x00, 0x80, // -32768
	}
	if !bytes.Equal(payload, want) {
		t.Errorf("payload = % X, want % X", payload, want)
	}
}

func TestScalePreservesAxisOrder(t *testing.T) {
	raw := RawSample{Ax: 16384, Ay: -16384, Az: 8192, Gx: 131, Gy: -131, Gz: 262}

	got := Scale(raw)
	want := ScaledSample{Ax: 1000, Ay: -1000, Az: 500, Gx: 1000, Gy: -1000, Gz: 2000}
	if got != want {
		t.Errorf("Scale(%+v) = %+v, want %+v", raw, got, want)
	}
}

func TestScaleClampsGyroOverflow(t *testing.T) {
	// 32767 LSB is ~250°/s, which is 250130 milli-°/s: beyond the int16
	// wire width. It must clamp, never wrap.
	got := Scale(RawSample{Gx: 32767, Gy: -32768})
	if got.Gx != 32767 {
		t.Errorf("Gx = %d, want clamped 32767", got.Gx)
	}
	if got.Gy != -32768 {
		t.Errorf("Gy = %d, want clamped -32768", got.Gy)
	}
}
