// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strconv"

	"github.com/scigolib/ply/internal/utils"
)

// Header keywords recognized inside an element block.
const (
	KeywordElement   = "element"
	KeywordProperty  = "property"
	KeywordEndHeader = "end_header"
	KeywordComment   = "comment"
)

// initialRows caps up-front allocations so a bogus row count in a short
// file cannot reserve memory the body never fills.
const initialRows = 4096

// Limits bounds the sizes an input may declare.
type Limits struct {
	MaxElementRows int // Zero disables the check.
	MaxListLength  int // Zero disables the check.
	ChunkRows      int // Records per binary read; zero picks a default.
}

// elementStore holds decoded values. An element is either a table of
// scalar columns or a single jagged list, never both.
type elementStore interface {
	isElementStore()
}

type tableStore struct {
	columns []Column // One per property, in declaration order.
}

type jaggedStore struct {
	values Jagged
}

func (tableStore) isElementStore()  {}
func (jaggedStore) isElementStore() {}

// Element is one declared element: a name, a row count and its properties.
// Values are filled once by Read.
type Element struct {
	name   string
	count  int
	format Format
	props  []*Property
	store  elementStore
}

// ParseElementHeader parses the block introduced by the element line kl.
// It consumes property and comment lines up to the next element or
// end_header line, which it returns so the caller can continue from it.
func ParseElementHeader(kl KeywordLine, s *Stream, f Format, lim Limits) (el *Element, next KeywordLine, err error) {
	label := kl.Rest
	defer func() {
		if err != nil {
			err = utils.WrapError(fmt.Sprintf("reading element '%s' at line %d", label, s.CurrentLine()), err)
		}
	}()

	params, err := kl.Params(2)
	if err != nil {
		return nil, KeywordLine{}, err
	}
	label = params[0]

	count, err := strconv.Atoi(params[1])
	if err != nil || count < 0 {
		return nil, KeywordLine{}, lineError(ErrInvalidValue, kl.Line,
			"invalid row count '%s' for element '%s'", params[1], params[0])
	}
	if err := utils.ValidateCount(count, lim.MaxElementRows, "element rows"); err != nil {
		return nil, KeywordLine{}, &Error{Kind: ErrLimitExceeded, Msg: "checking declared rows", Line: kl.Line, Element: params[0], Cause: err}
	}

	el = &Element{name: params[0], count: count, format: f}

	for {
		next, ok, err := s.ReadNextKeywordLineOf(
			[]string{KeywordElement, KeywordProperty, KeywordEndHeader}, []string{KeywordComment}, false)
		if err != nil {
			return nil, KeywordLine{}, err
		}
		if !ok {
			return nil, KeywordLine{}, lineError(ErrMissingEndHeader, s.CurrentLine(), "end-of-header keyword not found")
		}
		if next.Keyword != KeywordProperty {
			if len(el.props) == 0 {
				return nil, KeywordLine{}, &Error{
					Kind: ErrNoPropertiesDeclared, Line: next.Line, Element: el.name,
					Msg: fmt.Sprintf("no properties defined for element '%s' at line %d", el.name, next.Line),
				}
			}
			return el, next, nil
		}

		pp, err := next.Params(2, 4)
		if err != nil {
			return nil, KeywordLine{}, err
		}
		prop, err := ParseProperty(pp, f)
		if err != nil {
			return nil, KeywordLine{}, err
		}
		if err := el.addProperty(prop, next.Line); err != nil {
			return nil, KeywordLine{}, err
		}
	}
}

// addProperty appends prop, enforcing that a list property is the only
// property of its element.
func (e *Element) addProperty(prop *Property, line int) error {
	if len(e.props) > 0 && (prop.IsList() || e.IsList()) {
		return &Error{
			Kind: ErrUnsupportedPropertyMix, Line: line, Element: e.name,
			Msg: fmt.Sprintf("unsupported property '%s' for element '%s' at line %d: "+
				"only single list elements or structured scalar elements are supported", prop.Name, e.name, line),
		}
	}
	if e.propertyIndex(prop.Name) >= 0 {
		return &Error{
			Kind: ErrDuplicateProperty, Line: line, Element: e.name,
			Msg: fmt.Sprintf("property '%s' declared twice for element '%s' at line %d", prop.Name, e.name, line),
		}
	}
	e.props = append(e.props, prop)
	return nil
}

// Read decodes the element's rows from s according to its format.
func (e *Element) Read(s *Stream, lim Limits) (err error) {
	defer func() {
		if err != nil {
			err = utils.WrapError(fmt.Sprintf("reading element '%s'", e.name), err)
		}
	}()

	if e.store != nil {
		return newError(ErrInvalidState, "element '%s' has already been read", e.name)
	}
	if len(e.props) == 0 {
		return newError(ErrNoPropertiesDeclared, "invalid element '%s' cannot be read", e.name)
	}

	switch e.format {
	case FormatASCII:
		if e.IsList() {
			return e.readASCIIList(s, lim)
		}
		return e.readASCIITable(s)
	case FormatBinaryLittleEndian, FormatBinaryBigEndian:
		if e.IsList() {
			return e.readBinaryList(s, lim)
		}
		return e.readBinaryTable(s, lim)
	}
	return newError(ErrUnsupportedFormat, "cannot decode element '%s' in format %s", e.name, e.format)
}

func (e *Element) readASCIITable(s *Stream) error {
	cols := make([]Column, len(e.props))
	for i, p := range e.props {
		cols[i] = NewColumn(p.Type.Value.Kind, min(e.count, initialRows))
	}

	for row := 0; row < e.count; row++ {
		toks, ok, err := s.ReadLineAsTokens()
		if err != nil {
			return err
		}
		if !ok {
			return e.truncated(s, row)
		}
		if len(toks) != len(e.props) {
			line := s.CurrentLine()
			return &Error{
				Kind: ErrRowArityMismatch, Line: line, Element: e.name,
				Expected: len(e.props), Actual: len(toks),
				Msg: fmt.Sprintf("expected %d elements in row %d, found %d", len(e.props), line, len(toks)),
			}
		}
		for i, tok := range toks {
			if cols[i], err = appendToken(cols[i], tok); err != nil {
				return e.invalidToken(s, e.props[i], tok, err)
			}
		}
	}

	e.store = tableStore{columns: cols}
	return nil
}

func (e *Element) readASCIIList(s *Stream, lim Limits) error {
	prop := e.props[0]
	rows := make([]Column, 0, min(e.count, initialRows))

	for row := 0; row < e.count; row++ {
		toks, ok, err := s.ReadLineAsTokens()
		if err != nil {
			return err
		}
		if !ok {
			return e.truncated(s, row)
		}
		line := s.CurrentLine()
		if len(toks) == 0 {
			return &Error{
				Kind: ErrListArityMismatch, Line: line, Element: e.name, Expected: 1,
				Msg: fmt.Sprintf("expected a list length in row %d, found an empty line", line),
			}
		}

		n, err := strconv.Atoi(toks[0])
		if err != nil || n < 0 {
			return e.invalidToken(s, prop, toks[0], err)
		}
		if err := utils.ValidateCount(n, lim.MaxListLength, "list length"); err != nil {
			return &Error{Kind: ErrLimitExceeded, Msg: "checking list length", Line: line, Element: e.name, Cause: err}
		}
		if n+1 != len(toks) {
			return &Error{
				Kind: ErrListArityMismatch, Line: line, Element: e.name,
				Expected: n + 1, Actual: len(toks),
				Msg: fmt.Sprintf("expected %d elements in list at row %d, found %d", n+1, line, len(toks)),
			}
		}

		col := NewColumn(prop.Type.Value.Kind, n)
		for _, tok := range toks[1:] {
			if col, err = appendToken(col, tok); err != nil {
				return e.invalidToken(s, prop, tok, err)
			}
		}
		rows = append(rows, col)
	}

	e.store = jaggedStore{values: Jagged{kind: prop.Type.Value.Kind, Rows: rows}}
	return nil
}

// readBinaryTable reads all rows as one packed record array.
func (e *Element) readBinaryTable(s *Stream, lim Limits) error {
	fields := make([]NumericType, len(e.props))
	for i, p := range e.props {
		fields[i] = p.Type.Value
	}

	cols, err := s.ReadRecords(fields, e.count, lim.ChunkRows)
	if err != nil {
		return err
	}
	e.store = tableStore{columns: cols}
	return nil
}

// readBinaryList reads each row as a count followed by that many values.
func (e *Element) readBinaryList(s *Stream, lim Limits) error {
	prop := e.props[0]
	rows := make([]Column, 0, min(e.count, initialRows))

	for row := 0; row < e.count; row++ {
		n, err := s.ReadCount(prop.Type.Count)
		if err != nil {
			return utils.WrapError(fmt.Sprintf("reading length of list row %d", row), err)
		}
		if err := utils.ValidateCount(n, lim.MaxListLength, "list length"); err != nil {
			return &Error{Kind: ErrLimitExceeded, Msg: fmt.Sprintf("checking length of list row %d", row), Line: -1, Element: e.name, Cause: err}
		}
		col, err := s.ReadBinaryArray(prop.Type.Value, n)
		if err != nil {
			return utils.WrapError(fmt.Sprintf("reading values of list row %d", row), err)
		}
		rows = append(rows, col)
	}

	e.store = jaggedStore{values: Jagged{kind: prop.Type.Value.Kind, Rows: rows}}
	return nil
}

func (e *Element) truncated(s *Stream, row int) error {
	return &Error{
		Kind: ErrTruncatedInput, Line: s.CurrentLine(), Element: e.name,
		Expected: e.count, Actual: row,
		Msg: fmt.Sprintf("expected %d rows for element '%s', input ended after %d", e.count, e.name, row),
	}
}

func (e *Element) invalidToken(s *Stream, p *Property, tok string, cause error) error {
	line := s.CurrentLine()
	return &Error{
		Kind: ErrInvalidValue, Line: line, Element: e.name, Cause: cause,
		Msg: fmt.Sprintf("invalid %s value '%s' for property '%s' at line %d", p.Type.Value.Kind, tok, p.Name, line),
	}
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// Count returns the declared number of rows.
func (e *Element) Count() int { return e.count }

// Format returns the body format the element is decoded from.
func (e *Element) Format() Format { return e.format }

// IsList reports whether the element holds a single list property.
func (e *Element) IsList() bool {
	return len(e.props) == 1 && e.props[0].IsList()
}

// IsDecoded reports whether the element's rows have been read.
func (e *Element) IsDecoded() bool { return e.store != nil }

// PropertyCount returns the number of declared properties.
func (e *Element) PropertyCount() int { return len(e.props) }

// PropertyNames returns property names in declaration order.
func (e *Element) PropertyNames() []string {
	names := make([]string, len(e.props))
	for i, p := range e.props {
		names[i] = p.Name
	}
	return names
}

func (e *Element) propertyIndex(name string) int {
	for i, p := range e.props {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Property returns the property at position i.
func (e *Element) Property(i int) (*Property, error) {
	if i < 0 || i >= len(e.props) {
		return nil, newError(ErrIndexOutOfBounds, "property index %d is out of bounds for element '%s' with %d properties", i, e.name, len(e.props))
	}
	return e.props[i], nil
}

// PropertyByName returns the property called name.
func (e *Element) PropertyByName(name string) (*Property, error) {
	i := e.propertyIndex(name)
	if i < 0 {
		return nil, newError(ErrPropertyNotFound, "property '%s' not found in element '%s'", name, e.name)
	}
	return e.props[i], nil
}

// PropertyValues returns the decoded values of the named property: a Column
// for scalar properties, a Jagged for list properties. An empty name selects
// the element's only property.
func (e *Element) PropertyValues(name string) (Values, error) {
	if e.store == nil {
		return nil, newError(ErrInvalidState, "element '%s' has no decoded values", e.name)
	}
	if name == "" {
		if len(e.props) != 1 {
			return nil, newError(ErrAmbiguousProperty,
				"no property selected for element '%s' with %d properties", e.name, len(e.props))
		}
		name = e.props[0].Name
	}

	i := e.propertyIndex(name)
	if i < 0 {
		return nil, newError(ErrPropertyNotFound, "property '%s' not found in element '%s'", name, e.name)
	}

	switch st := e.store.(type) {
	case tableStore:
		return st.columns[i], nil
	case jaggedStore:
		return st.values, nil
	}
	return nil, newError(ErrInvalidState, "element '%s' has an unknown value store", e.name)
}

// Column returns the values of a scalar property.
func (e *Element) Column(name string) (Column, error) {
	v, err := e.PropertyValues(name)
	if err != nil {
		return nil, err
	}
	col, ok := v.(Column)
	if !ok {
		return nil, newError(ErrInvalidState, "property '%s' of element '%s' is a list", name, e.name)
	}
	return col, nil
}

// List returns the rows of a list property.
func (e *Element) List(name string) (Jagged, error) {
	v, err := e.PropertyValues(name)
	if err != nil {
		return Jagged{}, err
	}
	j, ok := v.(Jagged)
	if !ok {
		return Jagged{}, newError(ErrInvalidState, "property '%s' of element '%s' is not a list", name, e.name)
	}
	return j, nil
}

// Float32Column returns a copy of a scalar property converted to float32.
func (e *Element) Float32Column(name string) ([]float32, error) {
	col, err := e.Column(name)
	if err != nil {
		return nil, err
	}
	return col.Float32(), nil
}
