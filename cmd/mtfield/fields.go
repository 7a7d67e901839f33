package main

import (
	"io"
	"log"
	"os"

	"github.com/fractalqb/mtfield"
	"github.com/spf13/cobra"
)

func init() {
	fieldsCmd.RunE = listFiles
	rootCmd.AddCommand(&fieldsCmd.Command)
}

var fieldsCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "fields [file...]",
		Short: "List the generic fields of messages",
	},
}

func listFiles(cmd *cobra.Command, files []string) error {
	out, err := output(rootCmd.format)
	if err != nil {
		return err
	}
	return eachMessage(files, func(name string, fields []mtfield.Field) error {
		if rootCmd.format == "text" {
			for _, f := range fields {
				if err := out(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		}
		return out(cmd.OutOrStdout(), fields)
	})
}

// eachMessage parses each file, or stdin if there are no files. Parse errors
// are logged and counted.
func eachMessage(files []string, do func(name string, fields []mtfield.Field) error) error {
	if len(files) == 0 {
		return doMessage("stdin", io.NopCloser(os.Stdin), do)
	}
	var failed error
	for _, f := range files {
		r, err := os.Open(f)
		if err != nil {
			log.Println(err)
			failed = err
			continue
		}
		if err = doMessage(f, r, do); err != nil {
			failed = err
		}
	}
	return failed
}

func doMessage(name string, r io.ReadCloser, do func(string, []mtfield.Field) error) error {
	fields, err := mtfield.Parse(name, r)
	if err != nil {
		log.Println(err)
		return err
	}
	return do(name, fields)
}
