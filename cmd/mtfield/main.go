// A command line tool to inspect SWIFT MT messages field by field
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCmd.format, "format", "f", "text",
		"Set output format: text, json or yaml")
}

var rootCmd = struct {
	cobra.Command
	format string
}{
	Command: cobra.Command{
		Use:   "mtfield",
		Short: "Inspect fields of SWIFT MT messages",
		Long: `Inspect fields of SWIFT MT messages

Message Lines:
   :<tag>:<content> starts a field
   <content>        continues the preceding field
   --               separates blocks of fields

Field Notations:
   [length][!]<class> with class one of
   n digits, a letters, c letters and digits,
   x any printable character, d decimal with comma
`,
		SilenceUsage: true,
	},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mtfield: ")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
