// Package mtfieldtest supports golden file tests of parsed message fields.
//
// Fields are rendered one per line as tag, a tab and the quoted content:
//
//	20	"STARTUMSE"
//	86	"Multi\nline"
//	--	""
//
// Example compares the fields of a message with testdata/TestStatement.fields:
//
//	func TestStatement(t *testing.T) {
//		fields, err := mtfield.ParseFile("testdata/statement.mt")
//		if err != nil {
//			t.Fatal(err)
//		}
//		mtfieldtest.Fatal(t, "", fields)
//	}
package mtfieldtest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/fractalqb/mtfield"
)

// When this environment variable is set to a regexp and the name of the current
// test matches, calls to Error or Fatal will record the fields as new golden
// data instead of comparing them. E.g.
//
//	MTFIELD_RECORD=TestStatement go test .
const RecordEnv = "MTFIELD_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

const StdSuffix = ".fields"

func Error(t testing.TB, hint string, fields []mtfield.Field) error {
	return defaultConfig.Error(t, hint, fields)
}

func Fatal(t testing.TB, hint string, fields []mtfield.Field) {
	defaultConfig.Fatal(t, hint, fields)
}

type Config struct {
	Dir             string
	RecordOverwrite bool
}

var defaultConfig = Config{Dir: GoTestdataDir}

func (cfg Config) Filename(t testing.TB, hint string) string {
	if hint == "" {
		return filepath.Join(cfg.Dir, t.Name()+StdSuffix)
	}
	return filepath.Join(cfg.Dir, t.Name(), hint+StdSuffix)
}

func (cfg Config) Error(t testing.TB, hint string, fields []mtfield.Field) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, fields)
		return nil
	}
	err := cfg.compare(t, hint, fields)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t testing.TB, hint string, fields []mtfield.Field) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, fields)
	} else if err := cfg.compare(t, hint, fields); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t testing.TB) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("mtfieldtest: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg Config) compare(t testing.TB, hint string, fields []mtfield.Field) error {
	file := cfg.Filename(t, hint)
	r, err := os.Open(file)
	if os.IsNotExist(err) {
		t.Logf("to record a golden file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("golden file %s does not exist", file)
	} else if err != nil {
		return err
	}
	defer r.Close()
	scn := bufio.NewScanner(r)
	lno := 0
	for scn.Scan() {
		lno++
		if lno > len(fields) {
			return fmt.Errorf("%s:%d: missing field [%s]", file, lno, scn.Text())
		}
		if have := Render(fields[lno-1]); have != scn.Text() {
			return fmt.Errorf("%s:%d: field [%s], want [%s]", file, lno, have, scn.Text())
		}
	}
	if err = scn.Err(); err != nil {
		return err
	}
	if lno < len(fields) {
		return fmt.Errorf("%s: unexpected field [%s]", file, Render(fields[lno]))
	}
	return nil
}

func (cfg Config) Record(t testing.TB, hint string, fields []mtfield.Field) {
	file := cfg.Filename(t, hint)
	if _, err := os.Stat(file); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("mtfieldtest: golden file '%s' already exists", file)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0777); err != nil {
		t.Fatal(err)
	}
	wr, err := os.Create(file)
	if err != nil {
		t.Fatal(err)
	}
	defer wr.Close()
	if err = Write(wr, fields); err != nil {
		t.Error(err)
	}
	t.Errorf("mtfieldtest recorder wrote: %s", file)
}

// Render renders a field as one golden file line.
func Render(f mtfield.Field) string {
	return f.Tag + "\t" + strconv.Quote(f.Content)
}

func Write(w io.Writer, fields []mtfield.Field) error {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(Render(f))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
