package sensors

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

// fakeBus records transactions and replays scripted responses.
type fakeBus struct {
	writes    [][]byte      // payloads of write transactions, in order
	readData  []byte        // bytes returned on the next read transaction
	selectErr error         // error for register-select writes
	readErr   error         // error for read transactions
	acked     map[uint16]bool
	txAddrs   []uint16
}

func (f *fakeBus) String() string                  { return "fake" }
func (f *fakeBus) SetSpeed(physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.txAddrs = append(f.txAddrs, addr)
	if len(w) == 0 && len(r) == 0 {
		if f.acked[addr] {
			return nil
		}
		return errors.New("nack")
	}
	if len(r) > 0 && len(w) == 0 {
		if f.readErr != nil {
			return f.readErr
		}
		copy(r, f.readData)
		return nil
	}
	// write (register select or register write)
	if f.selectErr != nil {
		return f.selectErr
	}
	f.writes = append(f.writes, append([]byte(nil), w...))
	if len(r) > 0 {
		copy(r, f.readData)
	}
	return nil
}

func TestWakeClearsSleepBit(t *testing.T) {
	bus := &fakeBus{}
	drv := NewMPU6050(bus, DefaultMPU6050Addr)

	if err := drv.Wake(); err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if len(bus.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(bus.writes))
	}
	if !bytes.Equal(bus.writes[0], []byte{0x6B, 0x00}) {
		t.Errorf("wake wrote % X, want 6B 00", bus.writes[0])
	}
	if bus.txAddrs[0] != 0x68 {
		t.Errorf("wake addressed 0x%02X, want 0x68", bus.txAddrs[0])
	}
}

func TestReadAllParsesBurst(t *testing.T) {
	// ax=0x1122 ay=0x3344 az=0x55AA | temp=0xDEAD (skipped) |
	// gx=0x0083 gy=0xFF7D(-131) gz=0x4000
	burst := []byte{
		0x11, 0x22,
		0x33, 0x44,
		0x55, 0xAA,
		0xDE, 0xAD,
		0x00, 0x83,
		0xFF, 0x7D,
		0x40, 0x00,
	}
	bus := &fakeBus{readData: burst}
	drv := NewMPU6050(bus, DefaultMPU6050Addr)

	raw, err := drv.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	// register-select write comes before the burst read
	if len(bus.writes) != 1 || !bytes.Equal(bus.writes[0], []byte{0x3B}) {
		t.Fatalf("register select wrote %v, want single 0x3B pointer write", bus.writes)
	}

	if raw.Ax != 0x1122 || raw.Ay != 0x3344 {
		t.Errorf("accel X/Y = %d/%d, want %d/%d", raw.Ax, raw.Ay, 0x1122, 0x3344)
	}
	if got, want := raw.Az, int16(0x55AA); got != want {
		t.Errorf("accel Z = %d, want %d", got, want)
	}
	if raw.Gx != 131 {
		t.Errorf("gyro X = %d, want 131", raw.Gx)
	}
	if raw.Gy != -131 {
		t.Errorf("gyro Y = %d, want -131", raw.Gy)
	}
	if raw.Gz != 0x4000 {
		t.Errorf("gyro Z = %d, want %d", raw.Gz, 0x4000)
	}
}

func TestReadAllNegativeValues(t *testing.T) {
	burst := []byte{
		0x80, 0x00, // -32768
		0xFF, 0xFF, // -1
		0xC0, 0x00, // -16384
		0x00, 0x00,
		0x80, 0x01, // -32767
		0x00, 0x01, // 1
		0xFF, 0x00, // -256
	}
	bus := &fakeBus{readData: burst}
	drv := NewMPU6050(bus, DefaultMPU6050Addr)

	raw, err := drv.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if raw.Ax != -32768 || raw.Ay != -1 || raw.Az != -16384 {
		t.Errorf("accel = %d/%d/%d, want -32768/-1/-16384", raw.Ax, raw.Ay, raw.Az)
	}
	if raw.Gx != -32767 || raw.Gy != 1 || raw.Gz != -256 {
		t.Errorf("gyro = %d/%d/%d, want -32767/1/-256", raw.Gx, raw.Gy, raw.Gz)
	}
}

func TestReadAllSelectFailure(t *testing.T) {
	bus := &fakeBus{selectErr: errors.New("bus stuck")}
	drv := NewMPU6050(bus, DefaultMPU6050Addr)

	_, err := drv.ReadAll()
	if !errors.Is(err, ErrRegisterSelect) {
		t.Fatalf("err = %v, want ErrRegisterSelect", err)
	}
	if errors.Is(err, ErrBurstRead) {
		t.Error("select failure must be distinguishable from read failure")
	}
}

func TestReadAllBurstFailure(t *testing.T) {
	bus := &fakeBus{readErr: errors.New("nack mid-transfer")}
	drv := NewMPU6050(bus, DefaultMPU6050Addr)

	_, err := drv.ReadAll()
	if !errors.Is(err, ErrBurstRead) {
		t.Fatalf("err = %v, want ErrBurstRead", err)
	}
}
