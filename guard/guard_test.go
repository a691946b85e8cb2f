// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/guard"
)

var (
	alice = account.Address{0x0a}
	bob   = account.Address{0x0b}
)

func TestContractOwnerOnly(t *testing.T) {
	assert.Nil(t, guard.ContractOwnerOnly(alice, alice), "owner rejected")
	assert.Equal(t, fault.NotContractOwner, guard.ContractOwnerOnly(alice, bob), "non-owner accepted")
}

func TestTokenOwnerOnly(t *testing.T) {
	assert.Nil(t, guard.TokenOwnerOnly(alice, alice), "owner rejected")
	assert.Equal(t, fault.NotTokenOwner, guard.TokenOwnerOnly(alice, bob), "non-owner accepted")
	assert.Equal(t, fault.TokenNotFound, guard.TokenOwnerOnly(account.Zero, bob), "missing token accepted")
}
