package client

import (
	"bytes"
	"io"
	"os"
)

// Payload is the data pushed during the upload phase. Its size must be
// known up front so the request can carry an exact Content-Length; the
// body itself is streamed, never re-buffered.
type Payload struct {
	r    io.Reader
	size int64
}

// NewBuffer wraps an in-memory payload.
func NewBuffer(data []byte) Payload {
	return Payload{r: bytes.NewReader(data), size: int64(len(data))}
}

// NewFile wraps an open file, sized via Stat. The caller keeps ownership
// of the handle and closes it once the push completes.
func NewFile(f *os.File) (Payload, error) {
	fi, err := f.Stat()
	if err != nil {
		return Payload{}, err
	}
	return Payload{r: f, size: fi.Size()}, nil
}

// Size returns the payload length in bytes.
func (p Payload) Size() int64 {
	return p.size
}
