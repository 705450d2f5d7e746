package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"yeet-machine/utils"
)

func main() {
	app := cli.NewApp()
	app.Name = "yeet-machine"
	app.Usage = "competition robot control loop over SocketCAN"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "iface", Value: "can0", Usage: "SocketCAN interface name"},
		cli.StringFlag{Name: "map", Value: "config/can/robot_can_map.csv", Usage: "Path to the device map CSV"},
		cli.StringFlag{Name: "config", Value: "config/robot.json", Usage: "Robot config JSON (empty for defaults)"},
		cli.StringFlag{Name: "limit-pin", Usage: "GPIO name of the cargo limit switch (overrides config)"},
		cli.StringFlag{Name: "auto-mode", Usage: "TAXI_ONLY|SHOOT_ONLY|SHOOT_THEN_TAXI|TAXI_INTAKE_SHOOT|NONE (overrides config)"},
		cli.StringFlag{Name: "log", Value: "info", Usage: "trace|debug|info|warn|error|critical"},
		cli.StringFlag{Name: "log-file", Value: "robot.log", Usage: "Log file path"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		_, _ = os.Stderr.WriteString("ERROR: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log, err := utils.NewFileLogger(c.String("log-file"), utils.ParseLevel(c.String("log")), true)
	if err != nil {
		return err
	}
	defer log.Close()

	cfg := RunnerConfig{
		Interface:  c.String("iface"),
		MapPath:    c.String("map"),
		ConfigPath: c.String("config"),
		LimitPin:   c.String("limit-pin"),
		AutoMode:   c.String("auto-mode"),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := NewRunner(ctx, cfg, log)
	if err != nil {
		log.Critical("Startup failed: %v", err)
		return err
	}
	defer runner.Close()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Critical("Run failed: %v", err)
		return err
	}
	return nil
}
