package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kettleson/satchel/satchel/archive"
	"github.com/kettleson/satchel/satchel/snapshot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Unwrap a satchel snapshot",
	Long:  `Unwrap a given snapshot to the given path (default ".")`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {

		dest := "."
		if len(args) == 2 {
			dest = args[1]
		}

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

		if err := unstow(a, dest); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}
	},
}

// unstow writes the archive's contents under dest. Directory entries
// come first so empty directories survive, then the extracted file
// pairs in archive order.
func unstow(a *archive.Archive, dest string) error {

	for _, entry := range a.Entries() {
		if entry.Header.Type != archive.ENTRY_TYPE_DIRECTORY {
			continue
		}
		if err := os.MkdirAll(filepath.Join(dest, entry.Header.Name), 0775); err != nil {
			return errors.Wrapf(err, "failed to make directory %s", entry.Header.Name)
		}
	}

	for _, pair := range archive.ExtractSimple(a) {
		target := filepath.Join(dest, pair.Name)
		if err := os.MkdirAll(filepath.Dir(target), 0775); err != nil {
			return errors.Wrapf(err, "failed to make parent for %s", pair.Name)
		}
		if err := os.WriteFile(target, []byte(pair.Content), 0664); err != nil {
			return errors.Wrapf(err, "failed to write %s", pair.Name)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
