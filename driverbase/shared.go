// Copyright (c) 2025 Columnar Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//         http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package driverbase

import (
	"errors"
	"fmt"
	"sync"

	"github.com/apache/arrow-adbc/go/adbc"
)

// Shared allows shared usage of an underlying native handle, but not
// concurrently.  Every access is serialized, and the handle is released
// exactly once by Close.
type Shared[T any] struct {
	mu      sync.Mutex
	handle  *T
	release func(*T) error
}

// NewShared wraps handle.  release is called by the first Close.
func NewShared[T any](handle *T, release func(*T) error) *Shared[T] {
	return &Shared[T]{
		handle:  handle,
		release: release,
	}
}

// Close releases the handle.  Subsequent calls are no-ops.
func (sh *Shared[T]) Close() error {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if sh.handle == nil {
		return nil
	}

	handle := sh.handle
	sh.handle = nil
	release := sh.release
	sh.release = nil
	if release == nil {
		return nil
	}
	if err := release(handle); err != nil {
		return errors.Join(adbc.Error{
			Code: adbc.StatusInternal,
			Msg:  fmt.Sprintf("[driverbase] Shared[%T].Close: failed to release handle: %s", *new(T), err),
		}, err)
	}
	return nil
}

// Closed reports whether Close has been called.
func (sh *Shared[T]) Closed() bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.handle == nil
}

func (sh *Shared[T]) Run(closure func(*T) error) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if sh.handle == nil {
		return adbc.Error{
			Msg:  fmt.Sprintf("[driverbase] Shared[%T].Run: already closed", *new(T)),
			Code: adbc.StatusInvalidState,
		}
	}

	return closure(sh.handle)
}

func WithShared[T, R any](sh *Shared[T], closure func(*T) (R, error)) (R, error) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if sh.handle == nil {
		return *new(R), adbc.Error{
			Msg:  fmt.Sprintf("[driverbase] Shared[%T].WithShared: already closed", *new(T)),
			Code: adbc.StatusInvalidState,
		}
	}

	return closure(sh.handle)
}
