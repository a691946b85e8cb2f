// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/algorithm"
	"github.com/algogate/algogated/execution"
	"github.com/algogate/algogated/fault"
)

// registryAdapter - joins the two registries into the view the
// gateway needs
type registryAdapter struct {
	algorithms algorithm.Registry
	executions execution.Registry
}

// NewRegistry - adapt live registries for a gateway
func NewRegistry(algorithms algorithm.Registry, executions execution.Registry) Registry {
	return &registryAdapter{
		algorithms: algorithms,
		executions: executions,
	}
}

func (r *registryAdapter) OwnerOf(executionId uint64) (account.Address, error) {
	return r.executions.OwnerOf(executionId)
}

func (r *registryAdapter) GetParent(executionId uint64) (uint64, error) {
	return r.executions.Parent(executionId)
}

func (r *registryAdapter) GetContentId(algorithmId uint64) (string, error) {
	return r.algorithms.ContentId(algorithmId)
}

func (r *registryAdapter) PutContentId(algorithmId uint64, contentId string) error {
	return r.algorithms.PutContentId(algorithmId, contentId)
}

var globalData struct {
	gateway *Gateway
}

// Initialise - setup the process-wide gateway
func Initialise(config Config) error {
	if nil != globalData.gateway {
		return fault.AlreadyInitialised
	}
	g, err := New(config)
	if nil != err {
		return err
	}
	globalData.gateway = g
	return nil
}

// Finalise - shut down the gateway
func Finalise() {
	globalData.gateway = nil
}

// Get - the process-wide gateway
func Get() *Gateway {
	return globalData.gateway
}
