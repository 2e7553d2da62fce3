package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/jams"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var audioOut string
	var jamOut string
	var bitDepth int

	cmd := &cobra.Command{
		Use:   "export <jam>",
		Short: "Split a packed jam into an audio file and a jam without audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jam, err := jams.Load(args[0])
			if err != nil {
				return err
			}

			depth := ctx.config().Decode.BitDepth
			if cmd.Flags().Changed("bit-depth") {
				depth = bitDepth
			}

			if err := muda.Save(audioOut, jamOut, jam, muda.WithBitDepth(depth)); err != nil {
				return err
			}
			ctx.logger.Info("exported", "audio", audioOut, "jam", jamOut, "bit_depth", depth)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", audioOut, jamOut)
			return nil
		},
	}

	cmd.Flags().StringVar(&audioOut, "audio", "", "Audio output path (.wav)")
	cmd.Flags().StringVar(&jamOut, "jam", "", "Jam output path (.jams or .jamz)")
	cmd.Flags().IntVar(&bitDepth, "bit-depth", 16, "PCM bit depth: 16, 24 or 32")
	_ = cmd.MarkFlagRequired("audio")
	_ = cmd.MarkFlagRequired("jam")
	return cmd
}
