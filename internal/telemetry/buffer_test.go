package telemetry

import (
	"testing"
	"time"
)

func TestBufferUpdateAndSnapshot(t *testing.T) {
	var buf Buffer
	now := time.Now()
	s := ScaledSample{Ax: 1, Ay: 2, Az: 3, Gx: 4, Gy: 5, Gz: 6}

	buf.Update(s, now)

	snap := buf.Snapshot()
	if snap.Sample != s {
		t.Errorf("snapshot sample = %+v, want %+v", snap.Sample, s)
	}
	if snap.Stale || snap.Failures != 0 {
		t.Errorf("fresh snapshot reports stale=%v failures=%d", snap.Stale, snap.Failures)
	}
	if !snap.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", snap.UpdatedAt, now)
	}
}

func TestMarkStaleRetainsSample(t *testing.T) {
	var buf Buffer
	s := ScaledSample{Ax: 100, Gz: -200}
	buf.Update(s, time.Now())

	buf.MarkStale()
	buf.MarkStale()

	snap := buf.Snapshot()
	if snap.Sample != s {
		t.Errorf("stale snapshot sample = %+v, want retained %+v", snap.Sample, s)
	}
	if !snap.Stale {
		t.Error("snapshot not marked stale after failed cycle")
	}
	if snap.Failures != 2 {
		t.Errorf("failures = %d, want 2", snap.Failures)
	}
}

func TestUpdateClearsStaleState(t *testing.T) {
	var buf Buffer
	buf.Update(ScaledSample{Ax: 1}, time.Now())
	buf.MarkStale()

	fresh := ScaledSample{Ax: 2}
	buf.Update(fresh, time.Now())

	snap := buf.Snapshot()
	if snap.Stale || snap.Failures != 0 {
		t.Errorf("recovered snapshot reports stale=%v failures=%d", snap.Stale, snap.Failures)
	}
	if snap.Sample != fresh {
		t.Errorf("sample = %+v, want %+v", snap.Sample, fresh)
	}
}

func TestZeroBufferSnapshot(t *testing.T) {
	var buf Buffer
	snap := buf.Snapshot()
	if snap.Stale || snap.Failures != 0 || snap.Sample != (ScaledSample{}) {
		t.Errorf("zero buffer snapshot = %+v, want zero value", snap)
	}
}
