package mtfield

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func ExampleAssemble() {
	fields, err := Assemble([]string{
		":21:ABCDEFGHIJKLMNOP",
		":86:first line",
		"second line",
		":13D:1605191047+0100",
		"--",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range fields {
		fmt.Printf("%s %q\n", f.Tag, f.Content)
	}
	// Output:
	// 21 "ABCDEFGHIJKLMNOP"
	// 86 "first line\nsecond line"
	// 13D "1605191047+0100"
	// -- ""
}

func TestAssemble(t *testing.T) {
	check := func(t *testing.T, lines []string, want ...Field) {
		fields := testerr.Shall1(Assemble(lines)).BeNil(t)
		if !slices.Equal(fields, want) {
			t.Errorf("fields %v, want %v", fields, want)
		}
	}
	t.Run("single field", func(t *testing.T) {
		check(t, []string{":20:REF123456789"}, Field{"20", "REF123456789"})
	})
	t.Run("with separator", func(t *testing.T) {
		check(t, []string{":21:ABCDEFGHIJKLMNOP", ":13D:1605191047+0100", "--"},
			Field{"21", "ABCDEFGHIJKLMNOP"},
			Field{"13D", "1605191047+0100"},
			Field{SeparatorTag, ""},
		)
	})
	t.Run("continuations", func(t *testing.T) {
		check(t, []string{":86:a", "b", "c", ":20:x", "y"},
			Field{"86", "a\nb\nc"},
			Field{"20", "x\ny"},
		)
	})
	t.Run("empty content continued", func(t *testing.T) {
		check(t, []string{":86:", "text"}, Field{"86", "\ntext"})
	})
	t.Run("blocks", func(t *testing.T) {
		check(t, []string{":20:a", "--", ":20:b", "--"},
			Field{"20", "a"},
			Field{SeparatorTag, ""},
			Field{"20", "b"},
			Field{SeparatorTag, ""},
		)
	})
	t.Run("no lines", func(t *testing.T) {
		check(t, nil)
	})
}

func TestAssemble_lineOrder(t *testing.T) {
	check := func(t *testing.T, lines []string, line int, typ LineType) {
		fields, err := Assemble(lines)
		if fields != nil {
			t.Errorf("partial result %v", fields)
		}
		var lerr *LineOrderError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected LineOrderError, got %v", err)
		}
		if lerr.Line != line || lerr.Type != typ {
			t.Errorf("error at %d %s, want %d %s", lerr.Line, lerr.Type, line, typ)
		}
	}
	t.Run("leading continuation", func(t *testing.T) {
		check(t, []string{"ABC"}, 1, LineContinuation)
	})
	t.Run("leading separator", func(t *testing.T) {
		check(t, []string{"--", ":20:x"}, 1, LineSeparator)
	})
	t.Run("empty line", func(t *testing.T) {
		check(t, []string{":20:x", "", ":21:y"}, 2, LineEmpty)
	})
	t.Run("continuation after separator", func(t *testing.T) {
		check(t, []string{":20:x", "--", "ABC"}, 3, LineContinuation)
	})
	t.Run("separator after separator", func(t *testing.T) {
		check(t, []string{":20:x", "--", "--"}, 3, LineSeparator)
	})
}

func TestAssembler_Step(t *testing.T) {
	var asm Assembler
	asm, f, err := asm.Step(ClassifyLine(1, ":86:a"), LineContinuation)
	if err != nil || f != nil {
		t.Fatalf("unexpected result %v %v", f, err)
	}
	if tag, ok := asm.Open(); !ok || tag != "86" {
		t.Fatalf("open field '%s' %t", tag, ok)
	}
	next, f, err := asm.Step(ClassifyLine(2, "b"), LineEOF)
	if err != nil {
		t.Fatal(err)
	}
	if f == nil || *f != (Field{"86", "a\nb"}) {
		t.Errorf("wrong field %v", f)
	}
	if _, ok := next.Open(); ok {
		t.Error("field still open after emit")
	}
	if tag, ok := asm.Open(); !ok || tag != "86" {
		t.Error("step modified receiver state")
	}
}

func TestAssembler_invariants(t *testing.T) {
	t.Run("field without tag", func(t *testing.T) {
		var asm Assembler
		_, _, err := asm.Step(Line{No: 1, Type: LineField}, LineEOF)
		var serr *StructureError
		if !errors.As(err, &serr) || serr.Line != 1 {
			t.Errorf("expected StructureError, got %v", err)
		}
	})
	t.Run("continuation without field", func(t *testing.T) {
		asm := Assembler{permit: afterField}
		_, _, err := asm.Step(ClassifyLine(7, "x"), LineEOF)
		var serr *StructureError
		if !errors.As(err, &serr) || serr.Line != 7 {
			t.Errorf("expected StructureError, got %v", err)
		}
	})
}

func TestAssemble_fieldCount(t *testing.T) {
	lines := []string{
		":20:a", "b", ":21:c", "--",
		":20:d", ":86:e", "f", "g", "--",
		":20:h",
	}
	fields := testerr.Shall1(Assemble(lines)).BeNil(t)
	count := 0
	for _, l := range lines {
		if typ, _, _ := Classify(l); typ == LineField || typ == LineSeparator {
			count++
		}
	}
	if len(fields) != count {
		t.Errorf("%d fields, want %d", len(fields), count)
	}
}

func TestAssembleString(t *testing.T) {
	fields := testerr.Shall1(AssembleString(":20:a\r\nb\r\n--\r\n")).BeNil(t)
	want := []Field{{"20", "a\nb"}, {SeparatorTag, ""}}
	if !slices.Equal(fields, want) {
		t.Errorf("fields %v, want %v", fields, want)
	}
}
