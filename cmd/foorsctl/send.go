package main

import (
	"fmt"

	"foors"

	"github.com/spf13/cobra"
)

func sendCmd() *cobra.Command {
	var from string
	var kindFlag string
	var severityFlag string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message from a node",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				return fmt.Errorf("--from is required")
			}

			var kind foors.MessageKind
			switch kindFlag {
			case "normal":
				kind = foors.Normal
			case "triage":
				kind = foors.TriageMessage
			default:
				return fmt.Errorf("unknown message kind %q (want normal or triage)", kindFlag)
			}

			var severity foors.Severity
			switch severityFlag {
			case "black":
				severity = foors.Black
			case "green":
				severity = foors.Green
			case "yellow":
				severity = foors.Yellow
			case "red":
				severity = foors.Red
			default:
				return fmt.Errorf("unknown severity %q (want black, green, yellow, or red)", severityFlag)
			}

			client, err := connect(cmd)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Close()

			if err := client.SendMessage(cmd.Context(), foors.NodeID(from), kind, severity); err != nil {
				return err
			}
			fmt.Println(successMsg("sent %s message from %s", kindFlag, accent(from)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "originating node id")
	cmd.Flags().StringVar(&kindFlag, "kind", "normal", "message kind: normal or triage")
	cmd.Flags().StringVar(&severityFlag, "severity", "green", "triage severity: black, green, yellow, or red")
	return cmd
}
