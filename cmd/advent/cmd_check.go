package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/regression"
)

var batteryPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify answers against a YAML battery of known results",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&batteryPath, "battery", "b", regression.DefaultBatteryPath, "Battery of expected answers")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := regression.LoadBattery(batteryPath)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	r, cleanup, err := newRunner()
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := regression.RunBattery(ctx, b, r)
	out := cmd.OutOrStdout()
	for _, res := range results {
		if res.Success {
			fmt.Fprintf(out, "%s %s\n", answerStyle.Render("ok  "), res.TaskID)
		} else {
			fmt.Fprintf(out, "%s %s  %s\n", errorStyle.Render("FAIL"), res.TaskID, mutedStyle.Render(res.Error))
		}
	}
	if err != nil {
		return err
	}
	if !regression.Passed(results) {
		return fmt.Errorf("battery %s failed", batteryPath)
	}
	printNote(out, fmt.Sprintf("%d answers verified", len(results)))
	return nil
}
