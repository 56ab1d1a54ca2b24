// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock mocks of the allocator capability
//
// written in the layout mockgen uses; mockgen v1.6.0 cannot generate
// the type parameter of allocator.Allocator[T], so keep this file in
// step with allocator/allocator.go by hand
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockAllocator is a mock of Allocator interface.
type MockAllocator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockAllocatorMockRecorder[T]
}

// MockAllocatorMockRecorder is the mock recorder for MockAllocator.
type MockAllocatorMockRecorder[T any] struct {
	mock *MockAllocator[T]
}

// NewMockAllocator creates a new mock instance.
func NewMockAllocator[T any](ctrl *gomock.Controller) *MockAllocator[T] {
	mock := &MockAllocator[T]{ctrl: ctrl}
	mock.recorder = &MockAllocatorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllocator[T]) EXPECT() *MockAllocatorMockRecorder[T] {
	return m.recorder
}

// Allocate mocks base method.
func (m *MockAllocator[T]) Allocate() (*T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allocate")
	ret0, _ := ret[0].(*T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Allocate indicates an expected call of Allocate.
func (mr *MockAllocatorMockRecorder[T]) Allocate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allocate", reflect.TypeOf((*MockAllocator[T])(nil).Allocate))
}

// Release mocks base method.
func (m *MockAllocator[T]) Release(item *T) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Release", item)
}

// Release indicates an expected call of Release.
func (mr *MockAllocatorMockRecorder[T]) Release(item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockAllocator[T])(nil).Release), item)
}
