// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"strings"

	"github.com/mr-tron/base58"

	"github.com/algogate/algogated/fault"
)

// decoded CIDv0: 0x12 0x20 prefix + 32 byte sha2-256 digest
const cidV0Length = 34

// ValidateContentId - sanity check a content id before storing it
//
// the id itself is opaque, but the common "Qm…" form is a base58btc
// encoded sha2-256 multihash and a corrupted one would only fail much
// later at retrieval time
func ValidateContentId(contentId string) error {
	if "" == contentId {
		return fault.InvalidContentId
	}

	if strings.HasPrefix(contentId, "Qm") {
		decoded, err := base58.Decode(contentId)
		if nil != err || cidV0Length != len(decoded) {
			return fault.InvalidContentId
		}
	}

	return nil
}
