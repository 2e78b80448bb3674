package data

import (
	"io"
)

type Reader interface {
	io.ByteScanner
	io.Reader
	Len() int
}

type LimitByteReader struct {
	R Reader // underlying reader
	N int64  // max bytes remaining
}

func LimitedByteReader(r Reader, n int64) *LimitByteReader {
	return &LimitByteReader{r, n}
}

func (l *LimitByteReader) Len() int {
	return int(l.N)
}

// NewVariableByteReader reads a length prefix and limits the returned reader
// to that many bytes. The underlying reader must hold all of them.
func NewVariableByteReader(r Reader) (*LimitByteReader, error) {
	length, err := readVariableLength(r)
	if err != nil {
		return nil, err
	}
	if length > r.Len() {
		return nil, truncated(io.ErrUnexpectedEOF, "variable length content")
	}
	return LimitedByteReader(r, int64(length)), nil
}

func (l *LimitByteReader) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.R.Read(p)
	l.N -= int64(n)
	return
}

func (l *LimitByteReader) ReadByte() (c byte, err error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	c, err = l.R.ReadByte()
	if err == nil {
		l.N--
	}
	return
}

func (l *LimitByteReader) UnreadByte() error {
	if err := l.R.UnreadByte(); err != nil {
		return err
	}
	l.N++
	return nil
}
