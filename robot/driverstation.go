package main

import (
	"fmt"

	"yeet-machine/robot/subsystems"
	"yeet-machine/utils"
)

// Phase is the match phase commanded by the driver station.
type Phase int

const (
	PhaseDisabled Phase = iota
	PhaseAutonomous
	PhaseTeleop
)

func (p Phase) String() string {
	switch p {
	case PhaseDisabled:
		return "disabled"
	case PhaseAutonomous:
		return "autonomous"
	case PhaseTeleop:
		return "teleop"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// DriverStationFrames names the device-map frames carrying operator input.
type DriverStationFrames struct {
	Control    string `json:"control"`
	Controller string `json:"controller"`
}

func DefaultDriverStationFrames() DriverStationFrames {
	return DriverStationFrames{Control: "DS_CONTROL", Controller: "DS_CONTROLLER"}
}

// Check verifies both frames exist as received frames in the device map.
func (d DriverStationFrames) Check(cmap *utils.CANMap) error {
	for _, name := range []string{d.Control, d.Controller} {
		fd, err := cmap.FrameByName(name)
		if err != nil {
			return fmt.Errorf("driver station: %w", err)
		}
		if fd.Direction != utils.DirRX {
			return fmt.Errorf("driver station frame %s is not rx", name)
		}
	}
	return nil
}

// Apply copies a decoded driver-station frame into the operator state. It
// returns the commanded phase when the frame is the control frame.
func (d DriverStationFrames) Apply(frame string, values map[string]float64, in *subsystems.OperatorState) (Phase, bool) {
	switch frame {
	case d.Control:
		in.JoyX = values["joy_x"]
		in.JoyY = values["joy_y"]
		in.JoyThrottle = values["joy_throttle"]
		in.JoyButtons = uint32(values["joy_buttons"])
		phase := Phase(values["phase"])
		if phase < PhaseDisabled || phase > PhaseTeleop {
			phase = PhaseDisabled
		}
		return phase, true
	case d.Controller:
		in.LeftX = values["left_x"]
		in.LeftY = values["left_y"]
		in.RightX = values["right_x"]
		in.RightY = values["right_y"]
		in.PadButtons = uint32(values["buttons"])
	}
	return PhaseDisabled, false
}
