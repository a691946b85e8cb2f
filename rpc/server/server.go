// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	algorithmReg "github.com/algogate/algogated/algorithm"
	catalogStore "github.com/algogate/algogated/catalog"
	"github.com/algogate/algogated/counter"
	executionReg "github.com/algogate/algogated/execution"
	gw "github.com/algogate/algogated/gateway"
	"github.com/algogate/algogated/rpc/algorithm"
	"github.com/algogate/algogated/rpc/catalog"
	"github.com/algogate/algogated/rpc/execution"
	"github.com/algogate/algogated/rpc/gateway"
	"github.com/algogate/algogated/rpc/node"
)

// Create - build a server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(gateway.New(log, gw.Get()))
	_ = server.Register(algorithm.New(log, algorithmReg.Get()))
	_ = server.Register(execution.New(log, executionReg.Get()))
	_ = server.Register(catalog.New(log, catalogStore.Get()))
	_ = server.Register(node.New(log, start, version, rpcCount, gw.Get(), algorithmReg.Get(), executionReg.Get()))

	return server
}
