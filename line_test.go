package mtfield

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line    string
		typ     LineType
		tag     string
		content string
	}{
		{"", LineEmpty, "", ""},
		{"--", LineSeparator, "", ""},
		{":20:REF123456789", LineField, "20", "REF123456789"},
		{":13D:1605191047+0100", LineField, "13D", "1605191047+0100"},
		{":86:", LineField, "86", ""},
		{":61:a:b", LineField, "61", "a:b"},
		{"::content", LineContinuation, "", ""},
		{":20", LineContinuation, "", ""},
		{"ABC", LineContinuation, "", ""},
		{"---", LineContinuation, "", ""},
		{" :20:x", LineContinuation, "", ""},
		{"-", LineContinuation, "", ""},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			typ, tag, content := Classify(test.line)
			if typ != test.typ {
				t.Errorf("type %s, want %s", typ, test.typ)
			}
			if tag != test.tag {
				t.Errorf("tag '%s', want '%s'", tag, test.tag)
			}
			if content != test.content {
				t.Errorf("content '%s', want '%s'", content, test.content)
			}
		})
	}
}

func TestLineTypes(t *testing.T) {
	s := typeSet(LineField, LineSeparator)
	if !s.has(LineField) || !s.has(LineSeparator) {
		t.Error("missing member")
	}
	if s.has(LineContinuation) || s.has(LineEmpty) || s.has(LineEOF) {
		t.Error("unexpected member")
	}
	if LineContinuation.String() != "FIELD_CONTINUATION" {
		t.Errorf("wrong name %s", LineContinuation)
	}
}
