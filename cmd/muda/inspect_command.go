package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/jams"
)

type sandboxEntry struct {
	Key     string `json:"key" yaml:"key"`
	Type    string `json:"type" yaml:"type"`
	Size    string `json:"size,omitempty" yaml:"size,omitempty"`
	Summary string `json:"summary" yaml:"summary"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <jam>",
		Short: "List the keys held in a jam's muda sandbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			jam, err := jams.Load(args[0])
			if err != nil {
				return err
			}

			sb, ok := muda.SandboxOf(jam)
			if !ok {
				ctx.logger.Warn("no muda sandbox found in jam", "path", args[0])
				sb = &muda.Sandbox{}
			}

			entries := make([]sandboxEntry, 0, sb.Len())
			for _, key := range sb.Keys() {
				v, _ := sb.Get(key)
				entries = append(entries, sandboxEntry{Key: key, Type: typeName(v), Size: sizeOf(v), Summary: summarizeValue(v)})
			}

			if format != formatTable {
				return writeStructured(cmd, format, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "muda sandbox is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Key, e.Type, e.Size, e.Summary})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Type", "Size", "Value"}, rows, isTerminal(cmd.OutOrStdout())))
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}
