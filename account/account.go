// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/algogate/algogated/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 20

// Address - a secp256k1 derived account address
//
// the last 20 bytes of the Keccak-256 hash of the uncompressed public key
type Address [AddressLength]byte

// Zero - the all-zero address, never a valid account
var Zero Address

// AddressFromHexString - convert a hex string, with optional "0x"
// prefix, to an address
func AddressFromHexString(s string) (Address, error) {
	var address Address

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hex.DecodedLen(len(s)) != AddressLength {
		return address, fault.InvalidKeyLength
	}
	if _, err := hex.Decode(address[:], []byte(s)); nil != err {
		return address, fault.InvalidKeyLength
	}
	return address, nil
}

// AddressFromBytes - convert a 20 byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	var address Address

	if AddressLength != len(buffer) {
		return address, fault.InvalidKeyLength
	}
	copy(address[:], buffer)
	return address, nil
}

// IsZero - true for the unset address
func (address Address) IsZero() bool {
	return Zero == address
}

// Bytes - the raw 20 bytes
func (address Address) Bytes() []byte {
	return address[:]
}

// String - lowercase hex with "0x" prefix
func (address Address) String() string {
	return "0x" + hex.EncodeToString(address[:])
}

// MarshalText - convert an address to hex text
//
//sample: "0x51e044373c4ba5a3d6eef0f7f7502b3d2f60276f"
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert hex text to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromHexString(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
