package hardware

import (
	"context"
	"fmt"
	"time"

	"go.einride.tech/can"

	"yeet-machine/utils"
)

// Bus holds the latest actuator setpoints and sensor readings for every
// frame in the device map. Actuators write setpoints, Flush packs them into
// frames, and Ingest unpacks received feedback.
type Bus struct {
	cmap   *utils.CANMap
	writer utils.CANWriter
	log    *utils.Logger

	tx     map[string]map[string]float64
	rx     map[string]map[string]float64
	rxSeen map[string]time.Time

	sent uint64
}

func NewBus(cmap *utils.CANMap, writer utils.CANWriter, log *utils.Logger) *Bus {
	b := &Bus{
		cmap:   cmap,
		writer: writer,
		log:    log,
		tx:     map[string]map[string]float64{},
		rx:     map[string]map[string]float64{},
		rxSeen: map[string]time.Time{},
	}
	for _, name := range cmap.Frames(utils.DirTX) {
		b.tx[name] = map[string]float64{}
	}
	b.Neutral()
	return b
}

// Neutral returns every actuator signal to its default: motors at zero,
// solenoid valves closed, compressor per the map.
func (b *Bus) Neutral() {
	for name, values := range b.tx {
		for _, s := range b.cmap.ByName[name].Signals {
			values[s.Name] = s.Default
		}
	}
}

func (b *Bus) set(frame, signal string, v float64) {
	b.tx[frame][signal] = v
}

// Setpoint returns the pending value of an actuator signal.
func (b *Bus) Setpoint(frame, signal string) float64 {
	return b.tx[frame][signal]
}

// Flush transmits every actuator frame, in frame-name order.
func (b *Bus) Flush(ctx context.Context) error {
	for _, name := range b.cmap.Frames(utils.DirTX) {
		frame, err := b.cmap.EncodeEinrideFrame(name, b.tx[name])
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := b.writer.WriteFrame(ctx, frame); err != nil {
			return fmt.Errorf("transmit %s: %w", name, err)
		}
		b.sent++
		b.log.Trace("TX %s id=0x%X len=%d data=% X", name, frame.ID, frame.Length, frame.Data[:frame.Length])
	}
	return nil
}

func (b *Bus) FramesSent() uint64 { return b.sent }

// Ingest decodes a received frame into the sensor table. Frames that are
// not in the map, or are actuator frames echoed back, are ignored.
func (b *Bus) Ingest(frame can.Frame, at time.Time) (*utils.FrameDef, map[string]float64, bool) {
	fd, ok := b.cmap.ByID[frame.ID]
	if !ok || fd.Direction != utils.DirRX {
		return nil, nil, false
	}
	_, values, err := b.cmap.DecodeEinrideFrame(frame)
	if err != nil {
		b.log.Warn("RX %s: %v", fd.Name, err)
		return nil, nil, false
	}
	b.rx[fd.Name] = values
	b.rxSeen[fd.Name] = at
	b.log.Trace("RX %s id=0x%X data=% X", fd.Name, frame.ID, frame.Data[:frame.Length])
	return fd, values, true
}

// Value returns the latest reading of a sensor signal.
func (b *Bus) Value(frame, signal string) (float64, bool) {
	values, ok := b.rx[frame]
	if !ok {
		return 0, false
	}
	v, ok := values[signal]
	return v, ok
}

// Age reports how long ago a sensor frame was last received.
func (b *Bus) Age(frame string, now time.Time) (time.Duration, bool) {
	seen, ok := b.rxSeen[frame]
	if !ok {
		return 0, false
	}
	return now.Sub(seen), true
}
