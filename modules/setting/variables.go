// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import "strings"

// Variable is a single name/value binding for the [Variables] section
type Variable struct {
	Name  string
	Value string
}

// VariableStore holds the variable overrides given on the command line.
// Bindings keep the order they were first set in, a later binding of the same name replaces the value.
type VariableStore struct {
	vars []Variable
}

// NewVariableStore creates an empty store
func NewVariableStore() *VariableStore {
	return &VariableStore{}
}

// ParseVariables parses Name=Value entries, the first '=' separates the name from the value
func ParseVariables(entries []string) (*VariableStore, error) {
	s := NewVariableStore()
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, ErrInvalidVariable{Entry: entry}
		}
		s.Set(name, value)
	}
	return s, nil
}

// Set binds name to value
func (s *VariableStore) Set(name, value string) {
	for i := range s.vars {
		if s.vars[i].Name == name {
			s.vars[i].Value = value
			return
		}
	}
	s.vars = append(s.vars, Variable{Name: name, Value: value})
}

// Variables returns the bindings in order
func (s *VariableStore) Variables() []Variable {
	if s == nil {
		return nil
	}
	return append([]Variable(nil), s.vars...)
}
