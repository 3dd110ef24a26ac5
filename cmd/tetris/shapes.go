package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

var flagRotate string

// cellReplacer widens mask cells to two columns so shapes keep their aspect.
var cellReplacer = strings.NewReplacer("#", "[]", ".", " .")

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece catalog",
	Long: `Print every catalog shape with its mask, size and color.

With --rotate, each mask is shown after one quarter turn, which is a
quick way to check the rotation transform.

Examples:
  tetris shapes
  tetris shapes --rotate cw
  tetris shapes --rotate ccw`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

func init() {
	shapesCmd.Flags().StringVar(&flagRotate, "rotate", "", "Show one rotation: cw or ccw")
}

func runShapes(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	for _, id := range engine.AllShapes() {
		s := engine.LookupShape(id)
		mask := s.Mask
		switch flagRotate {
		case "":
		case "cw":
			mask = mask.RotateCW()
		case "ccw":
			mask = mask.RotateCCW()
		default:
			return fmt.Errorf("unknown rotation %q (want cw or ccw)", flagRotate)
		}

		fmt.Fprintf(out, "%s  %dx%d  cells=%d\n", id, mask.W, mask.H, mask.Count())
		for _, row := range mask.Rows() {
			fmt.Fprintf(out, "  %s\n", cellReplacer.Replace(row))
		}
		fmt.Fprintln(out)
	}
	return nil
}
