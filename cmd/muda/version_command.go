package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
)

func newVersionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			info := muda.GetVersionInfo()
			if format != formatTable {
				return writeStructured(cmd, format, info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "muda %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}
