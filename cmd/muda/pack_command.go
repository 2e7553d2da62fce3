package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/jams"
)

// parseAssignments turns KEY=VALUE arguments into sandbox values. VALUE is
// decoded as JSON when it parses, and kept as a plain string otherwise.
func parseAssignments(args []string) (map[string]any, error) {
	values := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q (want KEY=VALUE)", arg)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		values[key] = v
	}
	return values, nil
}

func newPackCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack <jam> KEY=VALUE...",
		Short: "Merge values into a jam's muda sandbox",
		Long: "Merge values into a jam's muda sandbox, creating the sandbox if needed.\n" +
			"Values are parsed as JSON when possible (numbers, lists, objects) and\n" +
			"stored as strings otherwise.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			jam, err := jams.Load(args[0])
			if err != nil {
				return err
			}

			muda.JamPack(jam, values)

			dest := outputPath(args[0], output)
			if err := jams.Save(jam, dest); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			ctx.logger.Debug("packed values", "keys", len(values), "path", dest)
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d key(s) into %s\n", len(values), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of modifying the jam in place")
	return cmd
}

func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	return input
}
