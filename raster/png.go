package raster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Phase identifies the step of a PNG export that failed.
type Phase uint8

// Export phases.
const (
	PhaseOpen     Phase = iota // creating the destination file
	PhaseHeader                // PNG signature and IHDR
	PhaseData                  // IDAT pixel data
	PhaseFinalize              // IEND, flushing, closing and renaming
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseHeader:
		return "header"
	case PhaseData:
		return "pixel data"
	case PhaseFinalize:
		return "finalize"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// ErrNotRegular is the cause of an open failure when the destination exists but is not a regular
// file.
var ErrNotRegular = errors.New("raster: destination is not a regular file")

// ExportError is returned by EncodePNG and SavePNG.
type ExportError struct {
	Phase Phase
	Path  string // empty for EncodePNG
	Err   error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("raster: png %s: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("raster: png %s %q: %v", e.Phase, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// EncodePNG writes the image to w as an 8-bit RGBA, non-interlaced PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	if phase, err := m.encodePNG(w); err != nil {
		return &ExportError{Phase: phase, Err: err}
	}
	return nil
}

// SavePNG writes the image to a PNG file at path. The file is written next to its destination
// under a temporary name and renamed into place once complete, so a failed export never leaves a
// partial file at path.
//
// An existing file at path is replaced, not truncated: only write access to its directory is
// needed, and the new file keeps the old one's permission bits. New files get 0644.
func (m *Image) SavePNG(path string) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		if !fi.Mode().IsRegular() {
			return &ExportError{Phase: PhaseOpen, Path: path, Err: fmt.Errorf("%w: %s", ErrNotRegular, fi.Mode().Type())}
		}
		perm = fi.Mode().Perm()
	}

	outFile, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return &ExportError{Phase: PhaseOpen, Path: path, Err: err}
	}
	canRename := false
	defer func() {
		if !canRename {
			_ = outFile.Close()
			_ = os.Remove(outFile.Name())
		}
	}()

	if err := outFile.Chmod(perm); err != nil {
		return &ExportError{Phase: PhaseOpen, Path: path, Err: err}
	}

	if phase, err := m.encodePNG(outFile); err != nil {
		return &ExportError{Phase: phase, Path: path, Err: err}
	}

	if err := outFile.Sync(); err != nil {
		return &ExportError{Phase: PhaseFinalize, Path: path, Err: fmt.Errorf("could not flush: %w", err)}
	}
	if err := outFile.Close(); err != nil {
		return &ExportError{Phase: PhaseFinalize, Path: path, Err: fmt.Errorf("could not close: %w", err)}
	}
	if err := os.Rename(outFile.Name(), path); err != nil {
		return &ExportError{Phase: PhaseFinalize, Path: path, Err: err}
	}
	canRename = true
	return nil
}

func (m *Image) encodePNG(w io.Writer) (Phase, error) {
	cw := &chunkWriter{w: w}
	enc := png.Encoder{
		CompressionLevel: png.DefaultCompression,
		BufferPool:       pngPool,
	}
	if err := enc.Encode(cw, m.view()); err != nil {
		return cw.phase(), err
	}
	return PhaseFinalize, nil
}

// rgbaView hands the pixel buffer to the codec without copying. Reporting a non-opaque image
// keeps the codec on the RGBA color type even when every alpha is 0xff. The wrapper also hides
// the *image.NRGBA fast path from image/png, so rows are encoded through At.
type rgbaView struct {
	*image.NRGBA
}

func (rgbaView) Opaque() bool {
	return false
}

func (m *Image) view() image.Image {
	return rgbaView{&image.NRGBA{
		Pix:    m.pix,
		Stride: m.stride,
		Rect:   m.rect,
	}}
}

var pngSignature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// chunkWriter follows the PNG chunk stream passing through it, so a write error can be
// attributed to the chunk that was being written.
type chunkWriter struct {
	w io.Writer

	sig    int     // signature bytes seen
	hdr    [8]byte // length and type of the next chunk
	hdrLen int
	remain int64  // data and CRC bytes left in the current chunk
	typ    string // type of the current chunk
}

func (cw *chunkWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if err != nil {
		// Account for all of p, the failed write belongs to whatever chunk p starts.
		cw.feed(p)
		return n, err
	}
	cw.feed(p[:n])
	return n, nil
}

func (cw *chunkWriter) feed(b []byte) {
	for len(b) > 0 {
		switch {
		case cw.sig < len(pngSignature):
			k := min(len(pngSignature)-cw.sig, len(b))
			cw.sig += k
			b = b[k:]
		case cw.remain > 0:
			k := min(cw.remain, int64(len(b)))
			cw.remain -= k
			b = b[k:]
		default:
			k := copy(cw.hdr[cw.hdrLen:], b)
			cw.hdrLen += k
			b = b[k:]
			if cw.hdrLen == len(cw.hdr) {
				cw.typ = string(cw.hdr[4:8])
				cw.remain = int64(binary.BigEndian.Uint32(cw.hdr[:4])) + 4
				cw.hdrLen = 0
			}
		}
	}
}

func (cw *chunkWriter) phase() Phase {
	switch cw.typ {
	case "", "IHDR":
		return PhaseHeader
	case "IEND":
		return PhaseFinalize
	default:
		return PhaseData
	}
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
