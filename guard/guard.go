// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package guard - reusable ownership preconditions
//
// every mutating entry point performs its access check through one of
// these guards rather than an inline comparison
package guard

import (
	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
)

// ContractOwnerOnly - caller must be the controlling account of the
// whole contract instance
func ContractOwnerOnly(owner account.Address, caller account.Address) error {
	if owner != caller {
		return fault.NotContractOwner
	}
	return nil
}

// TokenOwnerOnly - caller must be the current owner of a single token
func TokenOwnerOnly(owner account.Address, caller account.Address) error {
	if owner.IsZero() {
		return fault.TokenNotFound
	}
	if owner != caller {
		return fault.NotTokenOwner
	}
	return nil
}
