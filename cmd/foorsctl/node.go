package main

import (
	"fmt"
	"strconv"

	"foors"

	"github.com/spf13/cobra"
)

func nodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "node",
		Aliases: []string{"nodes"},
		Short:   "Manage nodes in a running simulation",
	}
	cmd.AddCommand(nodeAddCmd())
	cmd.AddCommand(nodeListCmd())
	cmd.AddCommand(nodeRemoveCmd())
	return cmd
}

func nodeAddCmd() *cobra.Command {
	var typeFlag string
	var x, y float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Place a new node",
		RunE: func(cmd *cobra.Command, args []string) error {
			var typ foors.NodeType
			switch typeFlag {
			case "source":
				typ = foors.Source
			case "sink":
				typ = foors.Sink
			default:
				return fmt.Errorf("unknown node type %q (want source or sink)", typeFlag)
			}

			client, err := connect(cmd)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Close()

			id, err := client.AddNode(cmd.Context(), typ, foors.Position{X: x, Y: y})
			if err != nil {
				return err
			}
			fmt.Println(successMsg("added %s node %s", typeFlag, accent(string(id))))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "source", "node type: source or sink")
	cmd.Flags().Float64Var(&x, "x", 0, "starting X coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "starting Y coordinate")
	return cmd
}

func nodeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every node in the simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Close()

			nodes, err := client.GetNodes(cmd.Context())
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Println("no nodes")
				return nil
			}

			rows := make([][]string, len(nodes))
			for i, n := range nodes {
				rows[i] = []string{
					string(n.ID),
					n.Type.String(),
					fmt.Sprintf("%.1f,%.1f", n.Position.X, n.Position.Y),
					strconv.Itoa(len(n.Neighbors)),
					n.RoutingState.Mode.String(),
					strconv.Itoa(n.QueuedTriages),
				}
			}
			fmt.Println(renderTable(
				[]string{"ID", "Type", "Position", "Neighbors", "Mode", "Queued"},
				rows,
			))
			return nil
		},
	}
	return cmd
}

func nodeRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a node from the simulation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Close()

			if err := client.RemoveNode(cmd.Context(), foors.NodeID(args[0])); err != nil {
				return err
			}
			fmt.Println(successMsg("removed node %s", accent(args[0])))
			return nil
		},
	}
	return cmd
}
