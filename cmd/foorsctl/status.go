package main

import (
	"fmt"
	"strconv"

	"foors"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show aggregate simulation stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Close()

			stats, err := client.GetStats(cmd.Context())
			if err != nil {
				return err
			}

			rows := [][]string{
				{"nodes", strconv.Itoa(stats.NodeCount)},
				{"sources", strconv.Itoa(stats.SourceCount)},
				{"sinks", strconv.Itoa(stats.SinkCount)},
				{"links", strconv.Itoa(stats.LinkCount)},
				{"queued triages", strconv.Itoa(stats.QueuedTriages)},
				{"in-flight messages", strconv.Itoa(stats.InFlightCount)},
				{"triages observed", strconv.Itoa(stats.TriagesObserved)},
			}
			for _, mode := range []foors.RoutingMode{
				foors.ModeIntelligent, foors.ModeFlooding, foors.ModeInactive, foors.ModeNoConnections,
			} {
				rows = append(rows, []string{"mode: " + mode.String(), strconv.Itoa(stats.ModeCounts[mode])})
			}

			fmt.Println(renderTable([]string{"metric", "value"}, rows))
			return nil
		},
	}
	return cmd
}
