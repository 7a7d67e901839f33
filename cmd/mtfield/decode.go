package main

import (
	"errors"
	"log"

	"github.com/fractalqb/mtfield"
	"github.com/fractalqb/mtfield/field"
	"github.com/spf13/cobra"
)

func init() {
	decodeCmd.RunE = decodeFiles
	decodeCmd.Flags().BoolVarP(&decodeCmd.all, "all", "a", false,
		"Also output fields without typed decoder")
	rootCmd.AddCommand(&decodeCmd.Command)
}

var decodeCmd = struct {
	cobra.Command
	all bool
}{
	Command: cobra.Command{
		Use:   "decode [file...]",
		Short: "Decode known fields of messages into typed values",
	},
}

type decoded struct {
	Tag   string `json:"tag" yaml:"tag"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func decodeFiles(cmd *cobra.Command, files []string) error {
	out, err := output(rootCmd.format)
	if err != nil {
		return err
	}
	return eachMessage(files, func(name string, fields []mtfield.Field) error {
		var res []decoded
		failed := false
		for _, f := range fields {
			if f.IsSeparator() {
				continue
			}
			v, err := field.Decode(f)
			switch {
			case errors.Is(err, field.ErrUnknownTag):
				if decodeCmd.all {
					res = append(res, decoded{Tag: f.Tag, Type: "generic", Value: f.Content})
				}
			case err != nil:
				log.Printf("%s: %s", name, err)
				failed = true
			default:
				res = append(res, decoded{Tag: f.Tag, Type: typeName(v), Value: v})
			}
		}
		if rootCmd.format == "text" {
			for _, d := range res {
				if err := out(cmd.OutOrStdout(), d); err != nil {
					return err
				}
			}
		} else if err := out(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if failed {
			return errors.New("decoding failed")
		}
		return nil
	})
}

func typeName(v field.Typed) string {
	switch v.(type) {
	case field.DateTimeIndicator:
		return "DateTimeIndicator"
	case field.RelatedReference:
		return "RelatedReference"
	}
	return "unknown"
}
