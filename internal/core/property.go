// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import "fmt"

// Shape distinguishes scalar properties from list properties.
type Shape uint8

// Property shapes.
const (
	ShapeScalar Shape = iota + 1
	ShapeList
)

// PropertyType describes how one property is stored. Count is only set for
// lists.
type PropertyType struct {
	Shape Shape
	Count NumericType
	Value NumericType
}

// Property is one declared field of an element.
type Property struct {
	Name string
	Type PropertyType
}

// ParseProperty builds a property from the parameters of a property line:
// "<type> <name>" or "list <count-type> <value-type> <name>".
func ParseProperty(params []string, f Format) (*Property, error) {
	if len(params) != 2 && len(params) != 4 {
		return nil, newError(ErrBadKeywordParams,
			"expected 2 or 4 parameters for property definition, but %d were given", len(params))
	}

	if params[0] == "list" {
		if len(params) != 4 {
			return nil, newError(ErrBadKeywordParams,
				"property of type 'list' requires 4 parameters, but %d were given", len(params))
		}
		count, err := ResolveType(params[1], f)
		if err != nil {
			return nil, err
		}
		value, err := ResolveType(params[2], f)
		if err != nil {
			return nil, err
		}
		return &Property{
			Name: params[3],
			Type: PropertyType{Shape: ShapeList, Count: count, Value: value},
		}, nil
	}

	if len(params) != 2 {
		return nil, newError(ErrBadKeywordParams,
			"property of type 'scalar' requires 2 parameters, but %d were given", len(params))
	}
	value, err := ResolveType(params[0], f)
	if err != nil {
		return nil, err
	}
	return &Property{
		Name: params[1],
		Type: PropertyType{Shape: ShapeScalar, Value: value},
	}, nil
}

// IsList reports whether the property is a list.
func (p *Property) IsList() bool {
	return p.Type.Shape == ShapeList
}

// String describes the property the way header summaries print it.
func (p *Property) String() string {
	if p.IsList() {
		return fmt.Sprintf("%s: list (%s) of type %s", p.Name, p.Type.Count, p.Type.Value)
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Type.Value)
}
