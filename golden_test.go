package mtfield_test

import (
	"testing"

	"git.fractalqb.de/fractalqb/testerr"

	"github.com/fractalqb/mtfield"
	"github.com/fractalqb/mtfield/mtfieldtest"
)

func TestParseFile_statement(t *testing.T) {
	fields := testerr.Shall1(mtfield.ParseFile("testdata/statement.mt")).BeNil(t)
	mtfieldtest.Fatal(t, "", fields)
}
