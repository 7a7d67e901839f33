package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMatch(t *testing.T) {
	out, err := run(t, "match", "-f", "text", "-n", "6!n4!n1x4!n", "1605191047+0100")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[160519|1047|+|0100]\n" {
		t.Errorf("output [%s]", out)
	}
	if _, err = run(t, "match", "-f", "text", "-n", "16x", "ThisValueIsWayTooLongForSixteen"); err == nil {
		t.Error("expected error")
	}
}

func TestFieldsAndDecode(t *testing.T) {
	msg := filepath.Join(t.TempDir(), "msg.mt")
	err := os.WriteFile(msg, []byte(":21:NONREF\n:86:a\nb\n--\n"), 0666)
	if err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "fields", "-f", "text", msg)
	if err != nil {
		t.Fatal(err)
	}
	if out != ":21:NONREF\n:86:a\nb\n--\n" {
		t.Errorf("output [%s]", out)
	}
	out, err = run(t, "decode", "-f", "json", msg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"type": "RelatedReference"`) || strings.Contains(out, `"86"`) {
		t.Errorf("output [%s]", out)
	}
	out, err = run(t, "fields", "-f", "yaml", msg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tag: \"21\"") {
		t.Errorf("output [%s]", out)
	}
}
