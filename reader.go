// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/scigolib/ply/internal/core"
	"github.com/scigolib/ply/internal/utils"
)

// State is the lifecycle stage of a Reader.
type State uint8

// Reader states. StateHeaderOnly, StateDone and StateFailed are terminal.
const (
	StateUnopened State = iota
	StateHeaderParsing
	StateHeaderOnly
	StateBodyParsing
	StateDone
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateHeaderParsing:
		return "header-parsing"
	case StateHeaderOnly:
		return "header-only"
	case StateBodyParsing:
		return "body-parsing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state_%d", uint8(s))
}

// Reader parses one PLY input. It is opened once, parsed once, and then
// queried; it is not safe for concurrent use, but independent Readers share
// no state.
type Reader struct {
	cfg    config
	log    *slog.Logger
	state  State
	source string
	input  io.Reader

	closers []io.Closer

	format   Format
	version  string
	comments []string
	objInfo  []string
	elements []*Element

	err error
}

// NewReader creates an unopened Reader.
func NewReader(opts ...Option) (*Reader, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, utils.WrapError("invalid reader option", err)
	}
	return &Reader{cfg: cfg, log: cfg.logger, source: "stream"}, nil
}

// Open binds the Reader to src. Seekable sources are rewound to their start
// once. If src implements io.Closer it is closed when parsing concludes or
// when Close is called, whichever comes first.
func (r *Reader) Open(src io.Reader) error {
	if r.state != StateUnopened {
		return core.NewError(core.ErrInvalidState, "reader is %s, cannot open", r.state)
	}
	if c, ok := src.(io.Closer); ok {
		r.closers = append(r.closers, c)
	}

	if s, ok := src.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return r.fail(&core.Error{Kind: core.ErrIO, Msg: "rewinding input", Line: -1, Cause: err})
		}
	}

	r.input = src
	if r.cfg.decompress {
		in, closer, err := decompress(src)
		if err != nil {
			return r.fail(err)
		}
		if closer != nil {
			r.closers = append(r.closers, closer)
		}
		r.input = in
	}

	r.state = StateHeaderParsing
	return nil
}

// OpenFile opens the file at path and binds the Reader to it.
func (r *Reader) OpenFile(path string) error {
	if r.state != StateUnopened {
		return core.NewError(core.ErrInvalidState, "reader is %s, cannot open", r.state)
	}
	r.source = fmt.Sprintf("file '%s'", path)

	f, err := os.Open(path) //nolint:gosec // G304: User-provided filename is intentional for PLY file library
	if err != nil {
		return r.fail(&core.Error{Kind: core.ErrIO, Msg: "opening input", Line: -1, Cause: err})
	}
	return r.Open(f)
}

// Parse reads the header and, unless headerOnly is set, every element body
// in file order. Any failure is fatal: the Reader moves to StateFailed, keeps
// no elements, and returns the error with its parsing context. The input is
// released on every outcome.
func (r *Reader) Parse(headerOnly bool) error {
	if r.state != StateHeaderParsing {
		return core.NewError(core.ErrInvalidState, "reader is %s, cannot parse", r.state)
	}

	s := core.NewStream(r.input)
	s.Skipped = r.recordSkipped

	if err := r.parseHeader(s); err != nil {
		return r.fail(err)
	}

	if headerOnly {
		r.state = StateHeaderOnly
		return r.finish()
	}

	r.state = StateBodyParsing
	for _, el := range r.elements {
		start := time.Now()
		if err := el.Read(s, r.cfg.limits); err != nil {
			return r.fail(err)
		}
		r.log.Debug("ply element decoded",
			"element", el.Name(),
			"rows", el.Count(),
			"duration", time.Since(start))
	}

	r.state = StateDone
	return r.finish()
}

func (r *Reader) parseHeader(s *core.Stream) (err error) {
	defer func() {
		err = utils.WrapError("parsing PLY header", err)
	}()

	kl, ok, err := s.ReadKeywordLine()
	if err != nil {
		return err
	}
	if !ok {
		return core.NewError(core.ErrNotAPlyFile, "file appears to be empty")
	}
	if kl.Keyword != "ply" {
		return core.NewError(core.ErrNotAPlyFile, "given input does not appear to be a 'ply' file")
	}

	kl, ok, err = s.ReadNextKeywordLineOf([]string{"format"}, []string{core.KeywordComment}, false)
	if err != nil {
		return utils.WrapError("searching for 'format' keyword", err)
	}
	if !ok {
		return core.NewError(core.ErrUnsupportedFormat, "no 'format' line found before end of input")
	}
	params, err := kl.Params(2)
	if err != nil {
		return err
	}
	format, err := core.ParseFormat(params[0])
	if err != nil {
		return err
	}
	r.format = format
	r.version = params[1]
	r.log.Debug("ply format", "format", format.String(), "version", r.version)

	if err := r.parseElementList(s); err != nil {
		return utils.WrapError("reading element definitions from header", err)
	}
	return nil
}

func (r *Reader) parseElementList(s *core.Stream) error {
	targets := []string{core.KeywordElement, core.KeywordEndHeader}
	kl, ok, err := s.ReadNextKeywordLineOf(targets, nil, true)
	if err != nil {
		return err
	}

	for {
		if !ok {
			return core.NewError(core.ErrMissingEndHeader, "end-of-header keyword not found")
		}
		if kl.Keyword == core.KeywordEndHeader {
			return nil
		}

		var el *Element
		el, kl, err = core.ParseElementHeader(kl, s, r.format, r.cfg.limits)
		if err != nil {
			return err
		}
		r.elements = append(r.elements, el)
		r.log.Debug("ply element declared",
			"element", el.Name(),
			"rows", el.Count(),
			"properties", el.PropertyNames())
	}
}

// recordSkipped keeps comment and obj_info lines the grammar passes over.
func (r *Reader) recordSkipped(kl core.KeywordLine) {
	switch kl.Keyword {
	case core.KeywordComment:
		r.comments = append(r.comments, kl.Rest)
	case "obj_info":
		r.objInfo = append(r.objInfo, kl.Rest)
	default:
		r.log.Debug("ply header line ignored", "keyword", kl.Keyword, "line", kl.Line)
	}
}

// fail moves the Reader to StateFailed and releases the input.
func (r *Reader) fail(err error) error {
	_ = r.release()
	r.elements = nil
	r.state = StateFailed
	r.err = utils.WrapErrorWithStack(r.describeSource(), err)
	return r.err
}

// finish releases the input after a successful parse.
func (r *Reader) finish() error {
	if err := r.release(); err != nil {
		return r.fail(&core.Error{Kind: core.ErrIO, Msg: "closing input", Line: -1, Cause: err})
	}
	return nil
}

func (r *Reader) describeSource() string {
	if r.source == "stream" {
		return "reading from stream"
	}
	return "reading " + r.source
}

// release closes everything acquired by Open, innermost first.
func (r *Reader) release() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	r.input = nil
	return first
}

// Close releases the input if parsing has not already done so.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	return r.release()
}

// State returns the lifecycle stage.
func (r *Reader) State() State { return r.state }

// Err returns the failure that moved the Reader to StateFailed, or nil.
func (r *Reader) Err() error { return r.err }

// Format returns the declared body format.
func (r *Reader) Format() Format { return r.format }

// Version returns the version string of the format line.
func (r *Reader) Version() string { return r.version }

// Comments returns the text of the header's comment lines.
func (r *Reader) Comments() []string { return r.comments }

// ObjInfo returns the text of the header's obj_info lines.
func (r *Reader) ObjInfo() []string { return r.objInfo }

// ElementCount returns the number of declared elements.
func (r *Reader) ElementCount() int { return len(r.elements) }

// ElementNames returns element names in file order.
func (r *Reader) ElementNames() []string {
	names := make([]string, len(r.elements))
	for i, el := range r.elements {
		names[i] = el.Name()
	}
	return names
}

// Element returns the element at position i.
func (r *Reader) Element(i int) (*Element, error) {
	if i < 0 || i >= len(r.elements) {
		return nil, core.NewError(core.ErrIndexOutOfBounds, "element index %d is out of bounds for %d elements", i, len(r.elements))
	}
	return r.elements[i], nil
}

// ElementByName returns the first element called name.
func (r *Reader) ElementByName(name string) (*Element, error) {
	for _, el := range r.elements {
		if el.Name() == name {
			return el, nil
		}
	}
	return nil, core.NewError(core.ErrElementNotFound, "element '%s' not found", name)
}
