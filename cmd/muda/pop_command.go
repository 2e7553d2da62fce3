package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/jams"
)

func newPopCommand(ctx *commandContext) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "pop <jam> KEY...",
		Short: "Remove keys from a jam's muda sandbox and print their values",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			jam, err := jams.Load(args[0])
			if err != nil {
				return err
			}

			values, err := muda.JamPop(jam, args[1:]...)
			if err != nil {
				return err
			}
			if values == nil {
				// No sandbox; the library already logged a warning.
				return nil
			}

			dest := outputPath(args[0], output)
			if err := jams.Save(jam, dest); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			ctx.logger.Debug("popped values", "keys", len(values), "path", dest)

			if format != formatTable {
				return writeStructured(cmd, format, values)
			}
			rows := make([][]string, 0, len(values))
			for _, key := range args[1:] {
				v := values[key]
				rows = append(rows, []string{key, typeName(v), sizeOf(v), summarizeValue(v)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Type", "Size", "Value"}, rows, isTerminal(cmd.OutOrStdout())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of modifying the jam in place")
	addFormatFlag(cmd, &format)
	return cmd
}
