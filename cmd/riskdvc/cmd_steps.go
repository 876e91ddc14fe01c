package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const stepsText = `DVC steps for this project:
  1. Initialize tracking:   riskdvc scaffold && dvc init --no-scm
  2. Configure the remote:  dvc remote add -d localstorage <storage_path>
  3. Add data:              riskdvc track data/MachineLearningRating_v3.txt
  4. Commit the pointers:   riskdvc commit -m "Add raw insurance data"
  5. Push data:             riskdvc push
  6. Verify:                riskdvc status

Or run everything at once: riskdvc setup
`

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Print the manual tracking steps",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), stepsText)
	},
}
