// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package retrieve - fetch ciphertext blobs from content-addressed
// storage
package retrieve

import (
	"io"
	"net/http"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/fault"
)

// Fetcher - resolve a content id to its stored blob
type Fetcher interface {
	Fetch(contentId string) (string, error)
}

const (
	fetchTimeout = 30 * time.Second

	// a blob is immutable for a given content id, the cache only
	// limits repeated downloads
	cacheExpiration      = 10 * time.Minute
	cacheCleanupInterval = 5 * time.Minute

	// refuse to buffer absurd responses
	maximumBlobSize = 16 * 1024 * 1024
)

type httpFetcher struct {
	log      *logger.L
	endpoint string
	client   *http.Client
	cache    *cache.Cache
}

// NewFetcher - content store client for GET {endpoint}/{content id}
func NewFetcher(endpoint string) Fetcher {
	return &httpFetcher{
		log:      logger.New("retrieve"),
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   &http.Client{Timeout: fetchTimeout},
		cache:    cache.New(cacheExpiration, cacheCleanupInterval),
	}
}

// Fetch - download the blob for a content id
//
// any transport failure or non-200 status is a download failure; the
// body is returned as-is, interpretation is the caller's concern
func (f *httpFetcher) Fetch(contentId string) (string, error) {

	if cached, found := f.cache.Get(contentId); found {
		return cached.(string), nil
	}

	response, err := f.client.Get(f.endpoint + "/" + contentId)
	if nil != err {
		f.log.Errorf("fetch: %q transport error: %s", contentId, err)
		return "", fault.DownloadFailed
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		f.log.Warnf("fetch: %q status: %d", contentId, response.StatusCode)
		return "", fault.DownloadFailed
	}

	// read one byte past the limit to tell an oversized blob from
	// one that is exactly at it
	body, err := io.ReadAll(io.LimitReader(response.Body, maximumBlobSize+1))
	if nil != err {
		f.log.Errorf("fetch: %q read error: %s", contentId, err)
		return "", fault.DownloadFailed
	}
	if len(body) > maximumBlobSize {
		f.log.Warnf("fetch: %q blob exceeds: %d bytes", contentId, maximumBlobSize)
		return "", fault.DownloadFailed
	}

	blob := string(body)
	f.cache.Set(contentId, blob, cache.DefaultExpiration)
	return blob, nil
}
