// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log to be written before aborting
const flushDelay = 100 * time.Millisecond

// hold a logger channel
var globalData struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return ErrAlreadyInitialised
	}
	globalData.log = logger.New("PANIC")
	if nil == globalData.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the log channel
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		globalData.log.Flush()
		globalData.log = nil
	}
}

// Criticalf - log a formatted string prefixed by the caller's
// location
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message then panic
//
// used when a structural invariant is found to be broken
func Panicf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
	message := fmt.Sprintf(format, arguments...)
	panic("abort: " + message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	criticalf(2, "%s failed with error: %s", message, err)
	panic(fmt.Sprintf("abort: %s failed with error: %s", message, err))
}

// internal routine to handle an uninitialised logger channel
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		arguments = append(a, arguments...)
		format = "(%q:%d) " + format
	}

	globalData.Lock()
	log := globalData.log
	globalData.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
	time.Sleep(flushDelay)
}
