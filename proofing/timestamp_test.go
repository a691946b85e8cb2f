// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/proofing"
)

const now = uint64(1701688728000)

func TestValidateTimestampWindow(t *testing.T) {

	testData := []struct {
		claimed uint64
		err     error
	}{
		{now, nil},                                          // exactly current time
		{now - 1, nil},                                      // just signed
		{now - proofing.SignatureValidTime + 1, nil},        // oldest acceptable
		{now - proofing.SignatureValidTime, fault.StaleOrFutureTimestamp},     // window boundary is excluded
		{now - proofing.SignatureValidTime - 1, fault.StaleOrFutureTimestamp}, // stale
		{now + 1, fault.StaleOrFutureTimestamp},             // future, not clamped
		{0, fault.StaleOrFutureTimestamp},                   // epoch
	}

	for i, item := range testData {
		_, err := proofing.ValidateTimestamp(now, item.claimed)
		if item.err != err {
			t.Errorf("%d: claimed: %d  error mismatch, actual: %v  expected: %v", i, item.claimed, err, item.err)
		}
	}
}

func TestValidateTimestampDeterministic(t *testing.T) {

	d1, err := proofing.ValidateTimestamp(now, now-1000)
	assert.Nil(t, err, "validate failed")

	d2, err := proofing.ValidateTimestamp(now+2000, now-1000)
	assert.Nil(t, err, "validate failed")

	// digest depends only on the claimed timestamp
	assert.Equal(t, d1, d2, "digest not deterministic")

	d3, err := proofing.ValidateTimestamp(now, now-2000)
	assert.Nil(t, err, "validate failed")
	assert.NotEqual(t, d1, d3, "different timestamps must digest differently")
}
