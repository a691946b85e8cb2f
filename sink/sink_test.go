// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sink_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/sink"
)

const testingDirName = "testing"

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestDeposit(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload sink.Payload
		err := json.NewDecoder(r.Body).Decode(&payload)
		assert.Nil(t, err, "malformed payload")
		assert.Equal(t, uint64(7), payload.AssetId, "wrong asset id")
		assert.Equal(t, "hello", payload.Content, "wrong content")

		fmt.Fprint(w, "deposited")
	}))
	defer server.Close()

	s := sink.New(server.URL)

	acknowledgment, err := s.Deposit(7, "hello")
	assert.Nil(t, err, "deposit failed")
	assert.Equal(t, "deposited", acknowledgment, "wrong acknowledgment")
}

func TestDepositRejected(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := sink.New(server.URL)

	_, err := s.Deposit(7, "hello")
	assert.Equal(t, fault.SinkWriteFailed, err, "rejected deposit not detected")
}

func TestDepositUnreachable(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // now unreachable

	s := sink.New(server.URL)

	_, err := s.Deposit(7, "hello")
	assert.Equal(t, fault.SinkWriteFailed, err, "transport failure not detected")
}
