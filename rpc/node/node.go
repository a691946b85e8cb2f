// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	algorithmReg "github.com/algogate/algogated/algorithm"
	"github.com/algogate/algogated/counter"
	executionReg "github.com/algogate/algogated/execution"
	gw "github.com/algogate/algogated/gateway"
	"github.com/algogate/algogated/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Gateway    *gw.Gateway
	Algorithms algorithmReg.Registry
	Executions executionReg.Registry
	counter    *counter.Counter
}

func New(
	log *logger.L,
	start time.Time,
	version string,
	count *counter.Counter,
	g *gw.Gateway,
	algorithms algorithmReg.Registry,
	executions executionReg.Registry,
) *Node {
	return &Node{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:      start,
		Version:    version,
		Gateway:    g,
		Algorithms: algorithms,
		Executions: executions,
		counter:    count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version          string          `json:"version"`
	Uptime           string          `json:"uptime"`
	Connections      uint64          `json:"connections"`
	Owner            account.Address `json:"owner"`
	OwnerRestriction bool            `json:"ownerRestriction"`
	Algorithms       uint64          `json:"algorithms"`
	Executions       uint64          `json:"executions"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Connections = node.counter.Uint64()
	reply.Owner = node.Gateway.Owner()
	reply.OwnerRestriction = node.Gateway.OwnerRestriction()
	reply.Algorithms = node.Algorithms.Total()
	reply.Executions = node.Executions.Total()
	return nil
}
