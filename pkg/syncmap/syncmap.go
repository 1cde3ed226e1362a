// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package syncmap is a generic wrapper over standard library sync.Map, used
// by the jdwp package to correlate pending replies without a hand-rolled
// mutex-guarded map.
package syncmap

import "sync"

func zero[T any]() T {
	return *new(T)
}

type Map[Key comparable, Value any] sync.Map

func (m *Map[Key, Value]) syncMap() *sync.Map {
	return (*sync.Map)(m)
}

func (m *Map[Key, Value]) Store(key Key, value Value) {
	m.syncMap().Store(key, value)
}

// Load returns the value stored in the map (if found), and a boolean
// indicating whether the value was found.
func (m *Map[Key, Value]) Load(key Key) (Value, bool) {
	anyValue, found := m.syncMap().Load(key)
	if !found {
		return zero[Value](), false
	}
	return zeroIfNil[Value](anyValue), true
}

// Delete removes the value for key, if any.
func (m *Map[Key, Value]) Delete(key Key) {
	m.syncMap().Delete(key)
}

// Range calls f for each key-value pair in the map. If f returns false,
// iteration stops.
func (m *Map[Key, Value]) Range(f func(key Key, value Value) bool) {
	m.syncMap().Range(func(key, value any) bool {
		return f(key.(Key), zeroIfNil[Value](value))
	})
}

// LoadOrStore loads the existing value for key, or stores and returns
// newValue if none exists. The boolean result is true if the value was
// already present.
func (m *Map[Key, Value]) LoadOrStore(key Key, newValue Value) (Value, bool) {
	actual, found := m.syncMap().LoadOrStore(key, newValue)
	return zeroIfNil[Value](actual), found
}

// LoadAndDelete loads then deletes the value for key. The boolean result is
// false if no value was present.
func (m *Map[Key, Value]) LoadAndDelete(key Key) (Value, bool) {
	anyValue, found := m.syncMap().LoadAndDelete(key)
	if !found {
		return zero[Value](), false
	}
	return zeroIfNil[Value](anyValue), true
}

func zeroIfNil[T any](v any) T {
	if v == nil {
		return zero[T]()
	}
	return v.(T)
}
