package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kettleson/satchel/satchel/archive"
	"github.com/kettleson/satchel/satchel/snapshot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a satchel snapshot",
	Long: `Create a snapshot from a specified set of paths. Directories are
walked; every file found goes in as a normal entry and every directory
as a directory entry, in walk order.

example:

stow create mythings.satch a/ b.txt`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {

		snapshotFname := args[0]
		paths := args[1:]

		verbose, _ := cmd.Flags().GetBool("verbose")

		a := archive.New()

		for _, pathn := range paths {
			if err := stowPath(a, pathn, verbose); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				os.Exit(1)
			}
		}

		fileh, err := os.Create(snapshotFname)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errors.Wrap(err, "failed to create snapshot file"))
			os.Exit(1)
		}
		defer fileh.Close()

		if err := snapshot.Write(fileh, a); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}

		stats := a.Stats()
		fmt.Printf("wrote %s: %d entries, %d bytes of file content\n",
			snapshotFname, stats.TotalEntries, stats.TotalSize)
	},
	Example: "stow create mythings.satch a/",
}

// stowPath appends one path to the archive, walking it if it is a
// directory. The archive gets whatever bytes the filesystem hands
// back; no filtering, no normalization.
func stowPath(a *archive.Archive, pathn string, verbose bool) error {

	info, err := os.Stat(pathn)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", pathn)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(pathn)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", pathn)
		}
		if verbose {
			fmt.Println("adding file", pathn)
		}
		a.AddFile(pathn, string(data))
		return nil
	}

	return filepath.WalkDir(pathn, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk %s", path)
		}
		if entry.IsDir() {
			if verbose {
				fmt.Println("adding directory", path)
			}
			a.AddDirectory(path)
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		if verbose {
			fmt.Println("adding file", path)
		}
		a.AddFile(path, string(data))
		return nil
	})
}

func init() {
	rootCmd.AddCommand(createCmd)
}
