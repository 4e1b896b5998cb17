package cmd

import (
	"fmt"
	"os"

	"github.com/kettleson/satchel/satchel/snapshot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries in a satchel snapshot",
	Long:  `Print every entry name in the snapshot, in archive order.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		fileh, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errors.Wrap(err, "failed to open snapshot"))
			os.Exit(1)
		}
		defer fileh.Close()

		a, err := snapshot.Read(fileh)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}

		for _, name := range a.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
