package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foors/daemon"
	"foors/internal/ledger"
	"foors/internal/sim"
	"foors/internal/telemetry"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type scenarioFile struct {
	ConnectionRadius       float64       `yaml:"connection_radius"`
	InactiveRoutingTimeout time.Duration `yaml:"inactive_routing_timeout"`
	RouteExpiry            time.Duration `yaml:"route_expiry"`
	MessageSpeed           float64       `yaml:"message_speed"`
	GenerationInterval     time.Duration `yaml:"generation_interval"`
	AutoGenerate           bool          `yaml:"auto_generate"`
}

func runCmd() *cobra.Command {
	var scenarioPath string
	var ledgerPath string
	var tickInterval time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation daemon, listening on --socket",
		RunE: func(cmd *cobra.Command, args []string) error {
			socketPath, _ := cmd.Flags().GetString("socket")

			var sc scenarioFile
			if scenarioPath != "" {
				data, err := os.ReadFile(scenarioPath)
				if err != nil {
					return fmt.Errorf("read scenario: %w", err)
				}
				if err := yaml.Unmarshal(data, &sc); err != nil {
					return fmt.Errorf("parse scenario: %w", err)
				}
			}

			params := sim.DefaultParams()
			if sc.ConnectionRadius > 0 {
				params.ConnectionRadius = sc.ConnectionRadius
			}
			if sc.InactiveRoutingTimeout > 0 {
				params.InactiveRoutingTimeout = sc.InactiveRoutingTimeout
			}
			if sc.RouteExpiry > 0 {
				params.RouteExpiry = sc.RouteExpiry
			}
			if sc.MessageSpeed > 0 {
				params.MessageSpeed = sc.MessageSpeed
			}
			if sc.GenerationInterval > 0 {
				params.GenerationInterval = sc.GenerationInterval
			}

			opts := []sim.Option{sim.WithParams(params)}

			metrics, err := telemetry.New(nil)
			if err != nil {
				return fmt.Errorf("start telemetry: %w", err)
			}
			opts = append(opts, sim.WithTelemetry(metrics))

			if ledgerPath != "" {
				l, err := ledger.Open(ledgerPath)
				if err != nil {
					return fmt.Errorf("open ledger: %w", err)
				}
				defer l.Close()
				opts = append(opts, sim.WithLedger(l))
			}

			model := sim.New(opts...)
			if sc.AutoGenerate {
				model.StartAutoGeneration()
			}

			fmt.Println(successMsg("listening on %s", accent(socketPath)))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return daemon.Run(ctx, model, socketPath, tickInterval)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML file seeding simulation parameters")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "SQLite file to durably record observed triages")
	cmd.Flags().DurationVar(&tickInterval, "tick-interval", 200*time.Millisecond, "wall-clock interval between ticks")
	return cmd
}
