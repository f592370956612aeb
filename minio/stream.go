package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/jmgilman/go/storage/core"
	"github.com/jmgilman/go/storage/minio/internal/errs"
)

// stream is an in-memory view of one object's contents.
// Writable streams mark themselves dirty and upload the buffer on Close.
type stream struct {
	ctx      context.Context
	fs       *FS
	key      string
	data     []byte
	off      int64
	readonly bool
	dirty    bool
	closed   bool
}

// Read reads up to len(p) bytes from the current offset.
func (s *stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, errs.PathError("read", s.key, core.ErrClosed)
	}
	if s.off >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.off:])
	s.off += int64(n)
	return n, nil
}

// Write writes p at the current offset, growing the buffer as needed.
// Writes to a read-only stream fail with ErrPermission.
func (s *stream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errs.PathError("write", s.key, core.ErrClosed)
	}
	if s.readonly {
		return 0, errs.PathError("write", s.key, core.ErrPermission)
	}

	end := s.off + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}
	copy(s.data[s.off:end], p)
	s.off = end
	s.dirty = true
	return len(p), nil
}

// Seek sets the offset for the next Read or Write.
func (s *stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, errs.PathError("seek", s.key, core.ErrClosed)
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.off + offset
	case io.SeekEnd:
		abs = int64(len(s.data)) + offset
	default:
		return 0, errs.PathError("seek", s.key, fmt.Errorf("%w: whence %d", core.ErrInvalid, whence))
	}
	if abs < 0 {
		return 0, errs.PathError("seek", s.key, fmt.Errorf("%w: negative offset", core.ErrInvalid))
	}
	s.off = abs
	return abs, nil
}

// Close releases the stream; for a dirty writable stream it uploads the
// buffer back to the object under the context the stream was opened with.
func (s *stream) Close() error {
	if s.closed {
		return errs.PathError("close", s.key, core.ErrClosed)
	}
	s.closed = true

	if !s.dirty {
		return nil
	}
	if err := s.fs.putObject(s.ctx, s.key, s.data); err != nil {
		return errs.PathError("close", s.key, err)
	}
	return nil
}

// Compile-time interface check.
var _ core.Stream = (*stream)(nil)
