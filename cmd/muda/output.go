package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "format", formatTable, "Output format: table, json or yaml")
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", format)
	}
}

// writeStructured encodes v as JSON or YAML to the command's stdout.
func writeStructured(cmd *cobra.Command, format string, v any) error {
	switch format {
	case formatJSON:
		return writeJSON(cmd, v)
	case formatYAML:
		return writeYAML(cmd, v)
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as YAML to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const maxSummaryWidth = 60

// summarizeValue renders a sandbox value for a table cell. Signals and
// long lists are reduced to their shape.
func summarizeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case [][]float32:
		if len(x) == 0 {
			return "0 channels"
		}
		return fmt.Sprintf("%d ch x %d samples", len(x), len(x[0]))
	case []any:
		if len(x) == 0 {
			return "[]"
		}
	case string:
		return truncate(x)
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.Len() > 8 {
		return fmt.Sprintf("%s (%d items)", rv.Kind(), rv.Len())
	}
	data, err := json.Marshal(v)
	if err != nil {
		return truncate(fmt.Sprintf("%v", v))
	}
	return truncate(string(data))
}

// sizeOf returns the sample count of a signal or the length of a list or
// mapping, and "" for scalars.
func sizeOf(v any) string {
	if ch, ok := v.([][]float32); ok {
		if len(ch) == 0 {
			return "0"
		}
		return strconv.Itoa(len(ch[0]))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return strconv.Itoa(rv.Len())
	}
	return ""
}

func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxSummaryWidth {
		return s
	}
	return s[:maxSummaryWidth-3] + "..."
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
