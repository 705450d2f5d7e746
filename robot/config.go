package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	auton "yeet-machine/robot/autonomous"
	"yeet-machine/robot/hardware"
	"yeet-machine/robot/subsystems"
)

// Autonomous entry points.
const (
	AutoPathTimed    = "timed"
	AutoPathDistance = "distance"
)

// RobotConfig is the robot's JSON configuration. Any field left out of the
// file keeps its compiled-in default.
type RobotConfig struct {
	Meta              ConfigMeta                `json:"meta"`
	PeriodMS          int                       `json:"period_ms"`
	DSTimeoutMS       int                       `json:"ds_timeout_ms"`
	FeedbackTimeoutMS int                       `json:"feedback_timeout_ms"`
	XboxDrive         bool                      `json:"xbox_drive"`
	Auto              AutoConfig                `json:"auto"`
	Timing            auton.Timing              `json:"timing"`
	StraightDrive     auton.StraightDriveConfig `json:"straight_drive"`
	Buttons           subsystems.Buttons        `json:"buttons"`
	Devices           hardware.Devices          `json:"devices"`
	DriverStation     DriverStationFrames       `json:"driver_station"`
	LimitSwitchPin    string                    `json:"limit_switch_pin"`
}

type ConfigMeta struct {
	Name        string `json:"name"`
	Version     int    `json:"version"`
	Description string `json:"description"`
}

type AutoConfig struct {
	Mode          auton.Mode `json:"mode"`
	Path          string     `json:"path"` // "timed" or "distance"
	TaxiDistanceM float64    `json:"taxi_distance_m"`
}

func DefaultConfig() RobotConfig {
	return RobotConfig{
		Meta:              ConfigMeta{Name: "yeet-machine", Version: 1},
		PeriodMS:          20,
		DSTimeoutMS:       500,
		FeedbackTimeoutMS: 500,
		Auto: AutoConfig{
			Mode:          auton.ModeNone,
			Path:          AutoPathTimed,
			TaxiDistanceM: auton.DefaultTaxiDistance,
		},
		Timing:         auton.DefaultTiming(),
		StraightDrive:  auton.DefaultStraightDriveConfig(),
		Buttons:        subsystems.DefaultButtons(),
		Devices:        hardware.DefaultDevices(),
		DriverStation:  DefaultDriverStationFrames(),
		LimitSwitchPin: "GPIO17",
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (RobotConfig, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return RobotConfig{}, fmt.Errorf("read file: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return RobotConfig{}, fmt.Errorf("unmarshal: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return RobotConfig{}, err
	}
	cfg.StraightDrive.Period = cfg.Period()
	return cfg, nil
}

func (c RobotConfig) Validate() error {
	if c.PeriodMS <= 0 {
		return fmt.Errorf("invalid period_ms: %d", c.PeriodMS)
	}
	if c.DSTimeoutMS <= 0 {
		return fmt.Errorf("invalid ds_timeout_ms: %d", c.DSTimeoutMS)
	}
	if c.Auto.Path != AutoPathTimed && c.Auto.Path != AutoPathDistance {
		return fmt.Errorf("auto.path must be %q or %q, got %q", AutoPathTimed, AutoPathDistance, c.Auto.Path)
	}
	if c.Auto.TaxiDistanceM <= 0 {
		return fmt.Errorf("invalid auto.taxi_distance_m: %f", c.Auto.TaxiDistanceM)
	}
	if err := c.Timing.Validate(); err != nil {
		return fmt.Errorf("timing: %w", err)
	}
	if c.StraightDrive.MaxSpeed <= 0 || c.StraightDrive.MaxSpeed > 1 {
		return fmt.Errorf("straight_drive.max_speed %.2f outside (0, 1]", c.StraightDrive.MaxSpeed)
	}
	if c.StraightDrive.MaxTurn < 0 || c.StraightDrive.Tolerance <= 0 {
		return fmt.Errorf("straight_drive: max_turn must be >= 0 and tolerance_m > 0")
	}
	return nil
}

func (c RobotConfig) Period() time.Duration {
	return time.Duration(c.PeriodMS) * time.Millisecond
}

func (c RobotConfig) DSTimeout() time.Duration {
	return time.Duration(c.DSTimeoutMS) * time.Millisecond
}

func (c RobotConfig) FeedbackTimeout() time.Duration {
	return time.Duration(c.FeedbackTimeoutMS) * time.Millisecond
}
