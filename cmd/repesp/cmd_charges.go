package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yongjiguan/repESP/format"
	"github.com/yongjiguan/repESP/gausslog"
)

func newChargesCmd() *cobra.Command {
	var scheme string

	cmd := &cobra.Command{
		Use:   "charges <log>",
		Short: "Print the per-atom charges of one scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := gausslog.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			enc := format.NewChargesEncoder(os.Stdout, gausslog.ChargeScheme(scheme))
			return enc.Encode(rep)
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", string(gausslog.Mulliken),
		"charge scheme (mulliken, mulliken-summed, esp, esp-summed, npa)")

	return cmd
}
