package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/kettleson/satchel/satchel/snapshot"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// The shape of the per-snapshot report, printed as YAML.
type inspectReport struct {
	File           string `yaml:"file"`
	TotalEntries   int    `yaml:"total_entries"`
	FileCount      int    `yaml:"files"`
	DirectoryCount int    `yaml:"directories"`
	TotalSize      uint64 `yaml:"total_size"`
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Investigate the contents of a satchel snapshot",
	Long: `Summarize each given snapshot: entry counts and total file size,
printed as YAML. With --dump, the full entry sequence is dumped too.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		dump, _ := cmd.Flags().GetBool("dump")

		for _, filename := range args {

			fileh, err := os.Open(filename)
			if err != nil {
				fmt.Println(err)
				continue
			}

			a, err := snapshot.Read(fileh)
			fileh.Close()
			if err != nil {
				fmt.Println("Failed to read snapshot:")
				fmt.Println(err)
				os.Exit(1)
			}

			stats := a.Stats()
			report := inspectReport{
				File:           filename,
				TotalEntries:   stats.TotalEntries,
				FileCount:      stats.FileCount,
				DirectoryCount: stats.DirectoryCount,
				TotalSize:      stats.TotalSize,
			}

			out, err := yaml.Marshal(&report)
			if err != nil {
				fmt.Println("Failed to render report:", err)
				os.Exit(1)
			}
			fmt.Println("---")
			fmt.Print(string(out))

			if dump {
				spew.Dump(a.Entries())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("dump", false, "Dump every entry, data included")
}
