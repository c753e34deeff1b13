// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobind

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerDuringUse(t *testing.T) {
	defer SetLogger(nil)

	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(l)
		}()
		go func() {
			defer wg.Done()
			if Logger() == nil {
				t.Error("Logger() = nil")
			}
		}()
	}
	wg.Wait()

	Logger().Debug("after")
	require.Equal(t, 1, logs.FilterMessage("after").Len())

	SetLogger(nil)
	require.NotNil(t, Logger())
	Logger().Debug("dropped")
	require.Equal(t, 0, logs.FilterMessage("dropped").Len())
}
