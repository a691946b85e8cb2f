// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sink - deliver decrypted payloads downstream
package sink

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/fault"
)

// Sink - downstream persistence or execution endpoint
type Sink interface {
	Deposit(assetId uint64, content string) (string, error)
}

const depositTimeout = 30 * time.Second

// Payload - the serialised deposit record
type Payload struct {
	AssetId uint64 `json:"asset_id"`
	Content string `json:"content"`
}

type httpSink struct {
	log      *logger.L
	endpoint string
	client   *http.Client
}

// New - sink client for POST {endpoint}
func New(endpoint string) Sink {
	return &httpSink{
		log:      logger.New("sink"),
		endpoint: endpoint,
		client:   &http.Client{Timeout: depositTimeout},
	}
}

// Deposit - POST the payload, returning the acknowledgment body
//
// dispatch is irreversible: the caller must sequence this last
func (s *httpSink) Deposit(assetId uint64, content string) (string, error) {

	body, err := json.Marshal(Payload{
		AssetId: assetId,
		Content: content,
	})
	if nil != err {
		return "", fault.SinkWriteFailed
	}

	response, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(body))
	if nil != err {
		s.log.Errorf("deposit: %d transport error: %s", assetId, err)
		return "", fault.SinkWriteFailed
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		s.log.Warnf("deposit: %d status: %d", assetId, response.StatusCode)
		return "", fault.SinkWriteFailed
	}

	acknowledgment, err := io.ReadAll(response.Body)
	if nil != err {
		s.log.Errorf("deposit: %d read error: %s", assetId, err)
		return "", fault.SinkWriteFailed
	}

	return string(acknowledgment), nil
}
