package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

var requiredColumns = []string{
	"direction", "frame_id", "frame_name", "cycle_ms", "dlc",
	"signal_name", "start_bit", "bit_length", "endianness",
	"signed", "factor", "offset", "min", "max", "default", "unit", "comment",
}

// LoadCANMap reads the robot device map from a CSV file.
func LoadCANMap(csvPath string) (*CANMap, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseCANMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", csvPath, err)
	}
	return m, nil
}

// ParseCANMap reads a device map with one row per signal. Rows sharing a
// frame_id are merged into one frame.
func ParseCANMap(src io.Reader) (*CANMap, error) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true
	r.Comment = '#'

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, k := range requiredColumns {
		if _, ok := idx[k]; !ok {
			return nil, fmt.Errorf("device map missing required column: %q", k)
		}
	}

	m := &CANMap{
		ByID:   map[uint32]*FrameDef{},
		ByName: map[string]*FrameDef{},
	}

	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := csvRow{rec: rec, idx: idx}

		frameID, err := parseHexOrDecUint32(row.get("frame_id"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid frame_id %q: %w", line, row.get("frame_id"), err)
		}

		frameName := row.get("frame_name")
		direction := strings.ToLower(row.get("direction"))
		if direction != DirTX && direction != DirRX {
			return nil, fmt.Errorf("line %d: frame %s: direction must be %q or %q, got %q",
				line, frameName, DirTX, DirRX, direction)
		}

		sig := SignalDef{
			Name:       row.get("signal_name"),
			Endianness: row.get("endianness"),
			Unit:       row.get("unit"),
			Comment:    row.get("comment"),
			Signed:     parseBool(row.get("signed")),
		}
		var cycleMS, dlc int
		ints := []struct {
			col string
			dst *int
		}{
			{"cycle_ms", &cycleMS}, {"dlc", &dlc},
			{"start_bit", &sig.StartBit}, {"bit_length", &sig.BitLength},
		}
		for _, f := range ints {
			if *f.dst, err = strconv.Atoi(row.get(f.col)); err != nil {
				return nil, fmt.Errorf("line %d: invalid %s: %w", line, f.col, err)
			}
		}
		floats := []struct {
			col string
			dst *float64
		}{
			{"factor", &sig.Factor}, {"offset", &sig.Offset},
			{"min", &sig.Min}, {"max", &sig.Max}, {"default", &sig.Default},
		}
		for _, f := range floats {
			if *f.dst, err = strconv.ParseFloat(row.get(f.col), 64); err != nil {
				return nil, fmt.Errorf("line %d: invalid %s: %w", line, f.col, err)
			}
		}

		if sig.Endianness != "" && sig.Endianness != "little" {
			return nil, fmt.Errorf("frame %s signal %s: unsupported endianness %q (only little supported)",
				frameName, sig.Name, sig.Endianness)
		}
		if sig.BitLength <= 0 || sig.BitLength > 64 {
			return nil, fmt.Errorf("frame %s signal %s: invalid bit_length %d", frameName, sig.Name, sig.BitLength)
		}
		if sig.Factor == 0 {
			return nil, fmt.Errorf("frame %s signal %s: factor must be non-zero", frameName, sig.Name)
		}
		if dlc <= 0 || dlc > 8 {
			return nil, fmt.Errorf("frame %s (0x%X): invalid dlc %d", frameName, frameID, dlc)
		}
		if sig.StartBit < 0 || sig.StartBit+sig.BitLength > dlc*8 {
			return nil, fmt.Errorf("frame %s signal %s: bits %d..%d exceed dlc %d",
				frameName, sig.Name, sig.StartBit, sig.StartBit+sig.BitLength-1, dlc)
		}

		fd, ok := m.ByID[frameID]
		if !ok {
			if _, dup := m.ByName[frameName]; dup {
				return nil, fmt.Errorf("frame name %s reused for id 0x%X", frameName, frameID)
			}
			fd = &FrameDef{
				ID:        frameID,
				Name:      frameName,
				DLC:       dlc,
				Direction: direction,
				CycleMS:   cycleMS,
			}
			m.ByID[frameID] = fd
			m.ByName[frameName] = fd
		}

		if fd.DLC != dlc {
			return nil, fmt.Errorf("frame %s (0x%X) has inconsistent DLC (%d vs %d)", frameName, frameID, fd.DLC, dlc)
		}
		if fd.Direction != direction {
			return nil, fmt.Errorf("frame %s (0x%X) has inconsistent direction (%s vs %s)", frameName, frameID, fd.Direction, direction)
		}

		fd.Signals = append(fd.Signals, sig)
	}

	for _, fd := range m.ByID {
		sort.Slice(fd.Signals, func(i, j int) bool { return fd.Signals[i].StartBit < fd.Signals[j].StartBit })
	}

	return m, nil
}

func (m *CANMap) FrameByName(name string) (*FrameDef, error) {
	fd, ok := m.ByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown frame %q (available: %v)", name, m.FrameNames())
	}
	return fd, nil
}

func (m *CANMap) FrameByID(id uint32) (*FrameDef, error) {
	fd, ok := m.ByID[id]
	if !ok {
		return nil, fmt.Errorf("unknown frame id 0x%X", id)
	}
	return fd, nil
}

// SignalRef resolves a frame/signal pair, checking its direction.
func (m *CANMap) SignalRef(frameName, signalName, direction string) (*FrameDef, *SignalDef, error) {
	fd, err := m.FrameByName(frameName)
	if err != nil {
		return nil, nil, err
	}
	if fd.Direction != direction {
		return nil, nil, fmt.Errorf("frame %s is %s, want %s", frameName, fd.Direction, direction)
	}
	sig, ok := fd.Signal(signalName)
	if !ok {
		return nil, nil, fmt.Errorf("frame %s has no signal %q", frameName, signalName)
	}
	return fd, sig, nil
}

type csvRow struct {
	rec []string
	idx map[string]int
}

func (r csvRow) get(col string) string {
	i := r.idx[col]
	if i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func parseHexOrDecUint32(s string) (uint32, error) {
	ss := strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(ss, "0x") || strings.HasPrefix(ss, "0X") {
		base = 16
		ss = ss[2:]
	}
	u, err := strconv.ParseUint(ss, base, 32)
	if err != nil {
		return 0, err
	}
	return uint32(u), nil
}

func parseBool(s string) bool {
	ss := strings.ToLower(s)
	return ss == "true" || ss == "1" || ss == "yes"
}
