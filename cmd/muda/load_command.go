package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/jams"
)

// decodeFlags are the LoadAudio options exposed on the command line.
type decodeFlags struct {
	sampleRate int
	stereo     bool
	offset     time.Duration
	duration   time.Duration
}

func (f *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.sampleRate, "sr", 0, "Target sample rate (0 keeps the native rate)")
	cmd.Flags().BoolVar(&f.stereo, "stereo", false, "Keep all channels instead of mixing down to mono")
	cmd.Flags().DurationVar(&f.offset, "offset", 0, "Start reading at this offset (e.g. 1.5s)")
	cmd.Flags().DurationVar(&f.duration, "duration", 0, "Maximum duration to read (0 reads to the end)")
}

// options merges flags over configuration defaults.
func (f *decodeFlags) options(cmd *cobra.Command, ctx *commandContext) []muda.Option {
	cfg := ctx.config()

	sampleRate := cfg.Decode.SampleRate
	if cmd.Flags().Changed("sr") {
		sampleRate = f.sampleRate
	}
	mono := cfg.Decode.Mono
	if cmd.Flags().Changed("stereo") {
		mono = !f.stereo
	}

	return []muda.Option{
		muda.WithSampleRate(sampleRate),
		muda.WithMono(mono),
		muda.WithOffset(f.offset),
		muda.WithDuration(f.duration),
	}
}

type loadSummary struct {
	Jam      string  `json:"jam" yaml:"jam"`
	Audio    string  `json:"audio" yaml:"audio"`
	Title    string  `json:"title" yaml:"title"`
	Channels int     `json:"channels" yaml:"channels"`
	Samples  int     `json:"samples" yaml:"samples"`
	Rate     int     `json:"sr" yaml:"sr"`
	Seconds  float64 `json:"seconds" yaml:"seconds"`
	Output   string  `json:"output,omitempty" yaml:"output,omitempty"`
}

func newLoadCommand(ctx *commandContext) *cobra.Command {
	var decode decodeFlags
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "load <jam> <audio>",
		Short: "Decode audio and pack it into a jam's muda sandbox",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			jamPath, audioPath := args[0], args[1]

			jam, err := muda.LoadJamAudio(jamPath, audioPath, decode.options(cmd, ctx)...)
			if err != nil {
				return err
			}

			if output != "" {
				if err := jams.Save(jam, output); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				ctx.logger.Info("packed jam written", "path", output)
			}

			sb, _ := muda.SandboxOf(jam)
			sig, ok := sb.Audio()
			if !ok {
				return fmt.Errorf("%s: audio missing from muda sandbox after load", jamPath)
			}
			summary := loadSummary{
				Jam:      jamPath,
				Audio:    audioPath,
				Title:    jam.FileMetadata.Title,
				Channels: sig.Channels(),
				Samples:  sig.Len(),
				Rate:     sig.Rate,
				Seconds:  sig.Duration().Seconds(),
				Output:   output,
			}
			if format != formatTable {
				return writeStructured(cmd, format, summary)
			}

			rows := [][]string{
				{"jam", summary.Jam},
				{"audio", summary.Audio},
				{"title", summary.Title},
				{"channels", strconv.Itoa(summary.Channels)},
				{"samples", strconv.Itoa(summary.Samples)},
				{"sr", strconv.Itoa(summary.Rate)},
				{"duration", sig.Duration().Round(time.Millisecond).String()},
			}
			if output != "" {
				rows = append(rows, []string{"output", output})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, isTerminal(cmd.OutOrStdout())))
			return nil
		},
	}

	decode.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the packed jam to this path (.jams or .jamz)")
	addFormatFlag(cmd, &format)
	return cmd
}
