// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import (
	"bufio"
	"errors"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/scigolib/ply/internal/utils"
)

// KeywordLine is a header line split into its leading keyword and the
// remaining text.
type KeywordLine struct {
	Keyword string
	Rest    string
	Line    int
}

// Params splits the remainder of the line into whitespace separated
// parameters and checks that their number is one of counts.
func (k KeywordLine) Params(counts ...int) ([]string, error) {
	want := make([]string, len(counts))
	for i, c := range counts {
		want[i] = strconv.Itoa(c)
	}
	expected := strings.Join(want, " or ")

	params := strings.Fields(k.Rest)
	if len(params) == 0 {
		return nil, lineError(ErrBadKeywordParams, k.Line,
			"expected %s parameters for keyword '%s' in line %d, but found none", expected, k.Keyword, k.Line)
	}
	if !slices.Contains(counts, len(params)) {
		return nil, lineError(ErrBadKeywordParams, k.Line,
			"expected %s parameters for keyword '%s' in line %d, but found %d", expected, k.Keyword, k.Line, len(params))
	}
	return params, nil
}

// Stream is a forward-only cursor over PLY input. Header and ASCII body
// lines are read as text; binary bodies are read as packed arrays from the
// same buffered position.
type Stream struct {
	r        *bufio.Reader
	nextLine int

	// Skipped, when set, observes every header line ReadNextKeywordLineOf
	// passes over.
	Skipped func(KeywordLine)
}

// NewStream wraps r in a buffered stream positioned at its start.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReaderSize(r, utils.DefaultBufferSize)}
}

// CurrentLine returns the zero-based index of the most recently read line,
// or -1 before the first read.
func (s *Stream) CurrentLine() int {
	return s.nextLine - 1
}

// ReadASCIILine reads one line with surrounding whitespace trimmed.
// It returns ok=false at end of input.
func (s *Stream) ReadASCIILine() (line string, ok bool, err error) {
	text, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, ioError(s.CurrentLine(), err)
		}
		if text == "" {
			return "", false, nil
		}
	}
	s.nextLine++
	return strings.TrimSpace(text), true, nil
}

// ReadKeywordLine skips blank lines and splits the next line into keyword
// and remainder. It returns ok=false at end of input.
func (s *Stream) ReadKeywordLine() (KeywordLine, bool, error) {
	for {
		text, ok, err := s.ReadASCIILine()
		if err != nil || !ok {
			return KeywordLine{}, false, err
		}
		if text == "" {
			continue
		}

		kl := KeywordLine{Keyword: text, Line: s.CurrentLine()}
		if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
			kl.Keyword = text[:i]
			kl.Rest = strings.TrimSpace(text[i:])
		}
		return kl, true, nil
	}
}

// ReadNextKeywordLineOf returns the next keyword line whose keyword is one of
// targets. Lines with an ignorable keyword are skipped, as is every
// non-target line when ignoreAllNonTarget is set; any other keyword fails
// with ErrUnexpectedKeyword. It returns ok=false at end of input.
func (s *Stream) ReadNextKeywordLineOf(targets, ignorable []string, ignoreAllNonTarget bool) (KeywordLine, bool, error) {
	for {
		kl, ok, err := s.ReadKeywordLine()
		if err != nil || !ok {
			return KeywordLine{}, false, err
		}

		switch {
		case slices.Contains(targets, kl.Keyword):
			return kl, true, nil
		case ignoreAllNonTarget, slices.Contains(ignorable, kl.Keyword):
			if s.Skipped != nil {
				s.Skipped(kl)
			}
		default:
			return KeywordLine{}, false, lineError(ErrUnexpectedKeyword, kl.Line,
				"unexpected keyword '%s' at line %d", kl.Keyword, kl.Line)
		}
	}
}

// ReadLineAsTokens reads one line split on whitespace.
// It returns ok=false at end of input.
func (s *Stream) ReadLineAsTokens() ([]string, bool, error) {
	text, ok, err := s.ReadASCIILine()
	if err != nil || !ok {
		return nil, false, err
	}
	return strings.Fields(text), true, nil
}

// ReadBinaryArray reads count packed values of type t.
func (s *Stream) ReadBinaryArray(t NumericType, count int) (Column, error) {
	cols, err := s.ReadRecords([]NumericType{t}, count, 0)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadRecords reads count fixed-stride records whose fields are laid out in
// the order given, without padding, and returns one column per field.
// Input is consumed chunkRows records at a time; zero picks a chunk that
// fits the pooled buffer.
func (s *Stream) ReadRecords(fields []NumericType, count, chunkRows int) ([]Column, error) {
	offsets := make([]int, len(fields))
	stride := 0
	for i, f := range fields {
		if f.Order == nil {
			return nil, newError(ErrInvalidState, "type %s has no byte order for binary decoding", f)
		}
		offsets[i] = stride
		stride += f.Size()
	}
	if stride == 0 {
		return nil, newError(ErrInvalidState, "binary record has no fields")
	}

	total, err := utils.RecordBytes(count, stride)
	if err != nil {
		return nil, &Error{Kind: ErrLimitExceeded, Msg: "sizing binary array", Line: -1, Cause: err}
	}

	if chunkRows <= 0 {
		chunkRows = max(1, utils.DefaultBufferSize/stride)
	}
	chunkRows = min(chunkRows, max(count, 1))

	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = NewColumn(f.Kind, min(count, chunkRows))
	}

	buf := utils.GetBuffer(chunkRows * stride)
	defer utils.ReleaseBuffer(buf)

	for done := 0; done < count; {
		n := min(chunkRows, count-done)
		chunk := buf[:n*stride]
		if got, err := io.ReadFull(s.r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, newError(ErrTruncatedInput,
					"expected %d bytes for %d values of %d bytes, input ended after %d",
					total, count, stride, done*stride+got)
			}
			return nil, ioError(s.CurrentLine(), err)
		}
		for i, f := range fields {
			cols[i] = appendBinary(cols[i], chunk, n, offsets[i], stride, f.Order)
		}
		done += n
	}

	return cols, nil
}

// ReadCount reads one list length of type t.
func (s *Stream) ReadCount(t NumericType) (int, error) {
	col, err := s.ReadBinaryArray(t, 1)
	if err != nil {
		return 0, err
	}
	v := col.Float64(0)
	if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, newError(ErrInvalidValue, "invalid list length %s", col.FormatValue(0))
	}
	return int(v), nil
}
