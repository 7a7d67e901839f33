package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type outputFunc func(w io.Writer, v any) error

func output(format string) (outputFunc, error) {
	switch format {
	case "text", "":
		return func(w io.Writer, v any) error {
			_, err := fmt.Fprintln(w, v)
			return err
		}, nil
	case "json":
		return func(w io.Writer, v any) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}, nil
	case "yaml":
		return func(w io.Writer, v any) error {
			enc := yaml.NewEncoder(w)
			defer enc.Close()
			return enc.Encode(v)
		}, nil
	}
	return nil, fmt.Errorf("unknown output format '%s'", format)
}
