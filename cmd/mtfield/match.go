package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fractalqb/mtfield/notation"
	"github.com/spf13/cobra"
)

func init() {
	matchCmd.RunE = matchContent
	matchCmd.Flags().StringVarP(&matchCmd.notation, "notation", "n", "",
		"Set the field notation, e.g. 6!n4!n1x4!n")
	matchCmd.MarkFlagRequired("notation")
	rootCmd.AddCommand(&matchCmd.Command)
}

var matchCmd = struct {
	cobra.Command
	notation string
}{
	Command: cobra.Command{
		Use:   "match -n <notation> content...",
		Short: "Split field content into subfields",
		Args:  cobra.MinimumNArgs(1),
	},
}

func matchContent(cmd *cobra.Command, contents []string) error {
	n, err := notation.Compile(matchCmd.notation)
	if err != nil {
		return err
	}
	out, err := output(rootCmd.format)
	if err != nil {
		return err
	}
	var failed error
	for _, c := range contents {
		subs, err := n.Parse(c)
		if err != nil {
			log.Println(err)
			failed = err
			continue
		}
		if rootCmd.format == "text" {
			err = out(cmd.OutOrStdout(), fmt.Sprintf("[%s]", strings.Join(subs, "|")))
		} else {
			err = out(cmd.OutOrStdout(), subs)
		}
		if err != nil {
			return err
		}
	}
	return failed
}
