package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stow",
	Short: "Stow is the reference tool for satchel snapshots",
	Long: `Stow packs files into an in-memory satchel archive and writes it out
as a snapshot, and turns snapshots back into files. It is the
filesystem-facing collaborator; the archive model itself never touches
disk.

	`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func GenDocs() {
	if err := os.MkdirAll("./docs/stow", 0775); err != nil {
		fmt.Println("failed to make dir:", err)
		return
	}
	err := doc.GenMarkdownTree(rootCmd, "./docs/stow")
	if err != nil {
		fmt.Println("failed to make docs:", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write detailed information to the terminal")
}
