package utils

import (
	"fmt"
	"math"

	"go.einride.tech/can"
)

// raw converts a physical value to the field's bit pattern. Values are
// clamped to the signal range first, then to what the field can hold.
func (s *SignalDef) raw(v float64) uint64 {
	v = clamp(v, s.Min, s.Max)
	r := clampRaw(int64(math.Round((v-s.Offset)/s.Factor)), s.BitLength, s.Signed)
	return truncate(r, s.BitLength)
}

func (s *SignalDef) physical(bits uint64) float64 {
	return float64(signExtend(bits, s.BitLength, s.Signed))*s.Factor + s.Offset
}

// Pack builds the payload for this frame. Signals missing from values are
// sent at their default.
func (fd *FrameDef) Pack(values map[string]float64) ([]byte, error) {
	if fd.DLC <= 0 || fd.DLC > 8 {
		return nil, fmt.Errorf("frame %s has invalid DLC %d", fd.Name, fd.DLC)
	}

	var payload uint64
	for i := range fd.Signals {
		s := &fd.Signals[i]
		if s.Factor == 0 {
			return nil, fmt.Errorf("frame %s signal %s has zero factor", fd.Name, s.Name)
		}
		v, ok := values[s.Name]
		if !ok {
			v = s.Default
		}
		payload = setBits(payload, s.StartBit, s.BitLength, s.raw(v))
	}

	out := make([]byte, fd.DLC)
	for i := range out {
		out[i] = byte(payload >> (8 * i))
	}
	return out, nil
}

// Unpack reads every signal of the frame from data.
func (fd *FrameDef) Unpack(data []byte) (map[string]float64, error) {
	if len(data) < fd.DLC {
		return nil, fmt.Errorf("frame %s (0x%X) expects DLC %d, got %d", fd.Name, fd.ID, fd.DLC, len(data))
	}

	var payload uint64
	for i := 0; i < fd.DLC; i++ {
		payload |= uint64(data[i]) << (8 * i)
	}

	out := make(map[string]float64, len(fd.Signals))
	for i := range fd.Signals {
		s := &fd.Signals[i]
		out[s.Name] = s.physical(getBits(payload, s.StartBit, s.BitLength))
	}
	return out, nil
}

func (m *CANMap) EncodeFrame(frameName string, values map[string]float64) ([]byte, uint32, error) {
	fd, err := m.FrameByName(frameName)
	if err != nil {
		return nil, 0, err
	}
	payload, err := fd.Pack(values)
	if err != nil {
		return nil, 0, err
	}
	return payload, fd.ID, nil
}

// EncodeEinrideFrame produces a can.Frame ready to transmit.
func (m *CANMap) EncodeEinrideFrame(frameName string, values map[string]float64) (can.Frame, error) {
	payload, id, err := m.EncodeFrame(frameName, values)
	if err != nil {
		return can.Frame{}, err
	}
	f := can.Frame{ID: id, Length: uint8(len(payload))}
	copy(f.Data[:], payload)
	return f, nil
}

func (m *CANMap) DecodeFrame(frameID uint32, data []byte) (map[string]float64, error) {
	fd, err := m.FrameByID(frameID)
	if err != nil {
		return nil, err
	}
	return fd.Unpack(data)
}

// DecodeEinrideFrame decodes a received can.Frame and returns its definition.
func (m *CANMap) DecodeEinrideFrame(frame can.Frame) (*FrameDef, map[string]float64, error) {
	fd, err := m.FrameByID(frame.ID)
	if err != nil {
		return nil, nil, err
	}
	values, err := fd.Unpack(frame.Data[:frame.Length])
	if err != nil {
		return nil, nil, err
	}
	return fd, values, nil
}
