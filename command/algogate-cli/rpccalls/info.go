// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/algogate/algogated/rpc/node"
)

// GetInfo - basic information about the algogated
func (client *Client) GetInfo() (*node.InfoReply, error) {

	var reply node.InfoReply
	err := client.client.Call("Node.Info", &node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)
	return &reply, nil
}
