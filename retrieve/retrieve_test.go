// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retrieve_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/fault"
	"github.com/algogate/algogated/retrieve"
)

const (
	testingDirName = "testing"
	testCid        = "QmZJTqJzHFt2kSDVWGWUXcgomDSBby1sTtiJcs3LXjXNnC"
	testBlob       = "53bfb3715cb5c28a6949d36d0e551a2434d10ad5415aaf783786d0"
)

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

func TestFetch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests += 1
		assert.Equal(t, "/"+testCid, r.URL.Path, "wrong request path")
		fmt.Fprint(w, testBlob)
	}))
	defer server.Close()

	f := retrieve.NewFetcher(server.URL)

	blob, err := f.Fetch(testCid)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, testBlob, blob, "wrong blob")

	// second fetch is served from cache
	blob, err = f.Fetch(testCid)
	assert.Nil(t, err, "cached fetch failed")
	assert.Equal(t, testBlob, blob, "wrong cached blob")
	assert.Equal(t, 1, requests, "cache was bypassed")
}

func TestFetchNotFound(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer server.Close()

	f := retrieve.NewFetcher(server.URL)

	_, err := f.Fetch("invalid_cid")
	assert.Equal(t, fault.DownloadFailed, err, "missing blob not detected")
}

func TestFetchOversized(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	oversized := bytes.Repeat([]byte{'a'}, 16*1024*1024+1)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests += 1
		_, _ = w.Write(oversized)
	}))
	defer server.Close()

	f := retrieve.NewFetcher(server.URL)

	// an oversized blob is a download failure, never a truncated success
	_, err := f.Fetch(testCid)
	assert.Equal(t, fault.DownloadFailed, err, "oversized blob accepted")

	// the truncated body must not have been cached
	_, err = f.Fetch(testCid)
	assert.Equal(t, fault.DownloadFailed, err, "oversized blob accepted")
	assert.Equal(t, 2, requests, "truncated blob served from cache")
}

func TestFetchUnreachable(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // now unreachable

	f := retrieve.NewFetcher(server.URL)

	_, err := f.Fetch(testCid)
	assert.Equal(t, fault.DownloadFailed, err, "transport failure not detected")
}
