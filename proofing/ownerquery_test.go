// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofing_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/proofing"
)

const (
	testRegistryHex = "0x51e044373c4ba5a3d6eef0f7f7502b3d2f60276f"
	testOwnerHex    = "0x00112233445566778899aabbccddeeff00112233"
)

func TestOwnerQuery(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		var request map[string]interface{}
		err := json.Unmarshal(body, &request)
		assert.Nil(t, err, "malformed request body")
		assert.Equal(t, "eth_call", request["method"], "wrong method")

		params := request["params"].([]interface{})
		call := params[0].(map[string]interface{})
		assert.Equal(t, testRegistryHex, call["to"], "wrong registry address")

		// selector ++ uint256(7)
		assert.Equal(t,
			"0x6352211e0000000000000000000000000000000000000000000000000000000000000007",
			call["data"], "wrong call data")

		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":"0x000000000000000000000000%s"}`, testOwnerHex[2:])
	}))
	defer server.Close()

	registry, _ := account.AddressFromHexString(testRegistryHex)
	expected, _ := account.AddressFromHexString(testOwnerHex)

	query := proofing.NewOwnerQuery(server.URL)
	owner, err := query.OwnerOf(registry, 7)
	assert.Nil(t, err, "owner query failed")
	assert.Equal(t, expected, owner, "wrong owner")
}

func TestOwnerQueryFailures(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	registry, _ := account.AddressFromHexString(testRegistryHex)

	// endpoint returns an RPC error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"execution reverted"}}`)
	}))
	query := proofing.NewOwnerQuery(server.URL)
	_, err := query.OwnerOf(registry, 1)
	assert.Equal(t, fault.RegistryCallFailed, err, "rpc error not detected")
	server.Close()

	// endpoint returns a bad status
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	query = proofing.NewOwnerQuery(server.URL)
	_, err = query.OwnerOf(registry, 1)
	assert.Equal(t, fault.RegistryCallFailed, err, "bad status not detected")
	server.Close()

	// endpoint is unreachable
	_, err = query.OwnerOf(registry, 1)
	assert.Equal(t, fault.RegistryCallFailed, err, "unreachable endpoint not detected")
}
