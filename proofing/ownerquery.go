// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofing

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
)

// OwnerQuery - resolve the current owner of a token on a registry
// contract
//
// the live implementation performs a chain-indexing query; tests
// substitute a deterministic fixture
type OwnerQuery interface {
	OwnerOf(registry account.Address, tokenId uint64) (account.Address, error)
}

// first four bytes of Keccak-256 of "ownerOf(uint256)"
var ownerOfSelector = []byte{0x63, 0x52, 0x21, 0x1e}

const queryTimeout = 30 * time.Second

type rpcOwnerQuery struct {
	log      *logger.L
	endpoint string
	client   *http.Client
}

// NewOwnerQuery - create a chain RPC backed owner query
func NewOwnerQuery(endpoint string) OwnerQuery {
	return &rpcOwnerQuery{
		log:      logger.New("ownerquery"),
		endpoint: endpoint,
		client:   &http.Client{Timeout: queryTimeout},
	}
}

// call parameters for the eth_call request
type callParameters struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Id      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcReply struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// OwnerOf - eth_call ownerOf(tokenId) on the registry contract
func (q *rpcOwnerQuery) OwnerOf(registry account.Address, tokenId uint64) (account.Address, error) {

	// ABI encode: selector ++ left padded uint256 token id
	data := make([]byte, 4+32)
	copy(data, ownerOfSelector)
	binary.BigEndian.PutUint64(data[28:36], tokenId)

	request := rpcRequest{
		JSONRPC: "2.0",
		Id:      1,
		Method:  "eth_call",
		Params: []interface{}{
			callParameters{
				To:   registry.String(),
				Data: "0x" + hex.EncodeToString(data),
			},
			"latest",
		},
	}

	body, err := json.Marshal(request)
	if nil != err {
		return account.Zero, fault.RegistryCallFailed
	}

	response, err := q.client.Post(q.endpoint, "application/json", bytes.NewReader(body))
	if nil != err {
		q.log.Errorf("owner query transport error: %s", err)
		return account.Zero, fault.RegistryCallFailed
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		q.log.Errorf("owner query status: %d", response.StatusCode)
		return account.Zero, fault.RegistryCallFailed
	}

	var reply rpcReply
	if err := json.NewDecoder(response.Body).Decode(&reply); nil != err {
		q.log.Errorf("owner query decode error: %s", err)
		return account.Zero, fault.RegistryCallFailed
	}
	if nil != reply.Error {
		q.log.Errorf("owner query rpc error: %d %q", reply.Error.Code, reply.Error.Message)
		return account.Zero, fault.RegistryCallFailed
	}

	// result is a 32 byte ABI word, address in the low order 20 bytes
	word, err := hex.DecodeString(trimHexPrefix(reply.Result))
	if nil != err || 32 != len(word) {
		q.log.Errorf("owner query malformed result: %q", reply.Result)
		return account.Zero, fault.RegistryCallFailed
	}

	return account.AddressFromBytes(word[12:])
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && "0x" == s[0:2] {
		return s[2:]
	}
	return s
}
