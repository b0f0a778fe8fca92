// MoleditPy Installer
// Copyright (c) 2026 The MoleditPy Installer Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of MoleditPy Installer.
//
// MoleditPy Installer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MoleditPy Installer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MoleditPy Installer.  If not, see <http://www.gnu.org/licenses/>.

package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrHasChildren = errors.New("registry key has subkeys")

type memNode struct {
	value    *string
	children map[string]*memNode
	name     string
}

func newMemNode(name string) *memNode {
	return &memNode{name: name, children: make(map[string]*memNode)}
}

// MemoryStore is an in-memory Store. Key names compare case-insensitively
// like the Windows registry. FailSet and FailDelete inject errors for a key
// path (matched case-insensitively).
type MemoryStore struct {
	root       *memNode
	FailSet    map[string]error
	FailDelete map[string]error
	mu         sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		root:       newMemNode(""),
		FailSet:    make(map[string]error),
		FailDelete: make(map[string]error),
	}
}

func splitKey(key string) []string {
	var parts []string
	for _, p := range strings.Split(key, Separator) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func injected(m map[string]error, key string) error {
	for k, err := range m {
		if strings.EqualFold(k, key) {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) find(key string) *memNode {
	n := m.root
	for _, p := range splitKey(key) {
		child, ok := n.children[strings.ToLower(p)]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func (m *MemoryStore) SetDefault(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := injected(m.FailSet, key); err != nil {
		return err
	}

	n := m.root
	for _, p := range splitKey(key) {
		lp := strings.ToLower(p)
		child, ok := n.children[lp]
		if !ok {
			child = newMemNode(p)
			n.children[lp] = child
		}
		n = child
	}
	v := value
	n.value = &v
	return nil
}

func (m *MemoryStore) Default(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.find(key)
	if n == nil || n == m.root {
		return "", ErrNotExist
	}
	if n.value == nil {
		return "", nil
	}
	return *n.value, nil
}

func (m *MemoryStore) Children(key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.find(key)
	if n == nil {
		return nil, ErrNotExist
	}
	names := make([]string, 0, len(n.children))
	for _, c := range n.children {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) DeleteLeaf(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := injected(m.FailDelete, key); err != nil {
		return err
	}

	parts := splitKey(key)
	if len(parts) == 0 {
		return errors.New("cannot delete store root")
	}

	parent := m.find(strings.Join(parts[:len(parts)-1], Separator))
	if parent == nil {
		return ErrNotExist
	}
	last := strings.ToLower(parts[len(parts)-1])
	n, ok := parent.children[last]
	if !ok {
		return ErrNotExist
	}
	if len(n.children) > 0 {
		return ErrHasChildren
	}
	delete(parent.children, last)
	return nil
}

// Keys returns the full path of every key in the store, sorted.
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var keys []string
	var walk func(prefix string, n *memNode)
	walk = func(prefix string, n *memNode) {
		for _, c := range n.children {
			p := Join(prefix, c.name)
			keys = append(keys, p)
			walk(p, c)
		}
	}
	walk("", m.root)
	sort.Strings(keys)
	return keys
}
