package mtfield

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// MaxLineLength is the maximum length of a message line in bytes that Reader
// accepts. Longer lines fail with bufio.ErrTooLong.
const MaxLineLength = 1 << 20

// Reader reads the fields of one message from a text stream. Lines may be
// terminated by "\n" or "\r\n" and must not exceed MaxLineLength. A Reader
// must not be used concurrently.
type Reader struct {
	src  string
	rd   io.Reader
	scn  *bufio.Scanner
	lno  int
	asm  Assembler
	cur  *Line
	done *islist.List
	err  error
}

type doneField struct {
	Field
	lsNext *doneField
}

// ListNext to implement intrusive singly linked list
func (d *doneField) ListNext() islist.Node { return d.lsNext }

// SetListNext to implement intrusive singly linked list
func (d *doneField) SetListNext(n islist.Node) {
	if n == nil {
		d.lsNext = nil
	} else {
		d.lsNext = n.(*doneField)
	}
}

// NewReader reads a message from r. The name is used in error messages.
func NewReader(name string, r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	scn := bufio.NewScanner(r)
	scn.Buffer(nil, MaxLineLength)
	return &Reader{
		src: name,
		rd:  r,
		scn: scn,
	}, nil
}

// NewString reads a message from text.
func NewString(name, text string) (*Reader, error) {
	return NewReader(name, strings.NewReader(text))
}

// OpenFile reads a message from a file. Close the Reader to close the file.
func OpenFile(file string) (*Reader, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	return NewReader(file, r)
}

// Close closes the underlying stream if it is an io.Closer.
func (rd *Reader) Close() error {
	rd.scn = nil
	if c, ok := rd.rd.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (rd *Reader) Name() string { return rd.src }

// Line returns the number of lines read so far, including lookahead.
func (rd *Reader) Line() int { return rd.lno }

// Next returns the next field of the message. After the last field io.EOF is
// returned. Any other error is final and the message must be considered
// unparsed.
func (rd *Reader) Next() (Field, error) {
	for rd.done == nil || rd.done.Len() == 0 {
		if rd.err != nil {
			return Field{}, rd.err
		}
		rd.err = rd.step()
	}
	f := rd.done.Front().(*doneField)
	rd.done.Drop(1)
	return f.Field, nil
}

func (rd *Reader) step() error {
	if rd.scn == nil {
		return errors.New("reader closed")
	}
	if rd.cur == nil {
		l, err := rd.scan()
		if err != nil {
			return err
		}
		rd.cur = &l
	}
	next, err := rd.scan()
	switch {
	case errors.Is(err, io.EOF):
		next.Type = LineEOF
	case err != nil:
		return err
	}
	var f *Field
	rd.asm, f, err = rd.asm.Step(*rd.cur, next.Type)
	if err != nil {
		return readError(rd.src, rd.cur.No, err)
	}
	if f != nil {
		d := &doneField{Field: *f}
		if rd.done == nil {
			rd.done = islist.New(d)
		} else {
			rd.done.PushBack(d)
		}
	}
	if next.Type == LineEOF {
		rd.cur = nil
		return io.EOF
	}
	*rd.cur = next
	return nil
}

func (rd *Reader) scan() (Line, error) {
	if !rd.scn.Scan() {
		if err := rd.scn.Err(); err != nil {
			return Line{}, readError(rd.src, rd.lno, err)
		}
		return Line{}, io.EOF
	}
	rd.lno++
	return ClassifyLine(rd.lno, rd.scn.Text()), nil
}

// Parse reads all fields of one message from r. If r is an io.Closer it is
// closed on return. On error no fields are returned.
func Parse(name string, r io.Reader) (fields []Field, err error) {
	rd, err := NewReader(name, r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rd.Close(); err == nil && cerr != nil {
			fields, err = nil, cerr
		}
	}()
	for {
		f, err := rd.Next()
		switch {
		case errors.Is(err, io.EOF):
			return fields, nil
		case err != nil:
			return nil, err
		}
		fields = append(fields, f)
	}
}

// ParseFile reads all fields of the message in file.
func ParseFile(file string) ([]Field, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	return Parse(file, r)
}
