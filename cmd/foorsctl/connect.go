package main

import (
	"context"

	"foors/sdk"

	"github.com/spf13/cobra"
)

// connect dials the daemon named by the --socket persistent flag.
func connect(cmd *cobra.Command) (*sdk.Client, error) {
	socketPath, _ := cmd.Flags().GetString("socket")
	return sdk.Dial(context.Background(), socketPath)
}
