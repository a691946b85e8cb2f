// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/rpc/gateway"
)

// SetContentId - owner-gated content id write
func (client *Client) SetContentId(caller account.Address, algorithmId uint64, contentId string) (*gateway.AckReply, error) {

	arguments := gateway.SetContentIdArguments{
		Caller:      caller,
		AlgorithmId: algorithmId,
		ContentId:   contentId,
	}
	client.printJson("SetContentId Request", arguments)

	var reply gateway.AckReply
	err := client.client.Call("Gateway.SetContentId", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("SetContentId Reply", reply)
	return &reply, nil
}

// SetContentIdWithProof - signature-gated content id write
func (client *Client) SetContentIdWithProof(caller account.Address, algorithmId uint64, contentId string, timestampMS uint64, signature string) (*gateway.AckReply, error) {

	arguments := gateway.SetContentIdWithProofArguments{
		Caller:      caller,
		AlgorithmId: algorithmId,
		ContentId:   contentId,
		TimestampMS: timestampMS,
		Signature:   signature,
	}
	client.printJson("SetContentIdWithProof Request", arguments)

	var reply gateway.AckReply
	err := client.client.Call("Gateway.SetContentIdWithProof", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("SetContentIdWithProof Reply", reply)
	return &reply, nil
}

// GetContentId - public content id read
func (client *Client) GetContentId(algorithmId uint64) (*gateway.GetContentIdReply, error) {

	arguments := gateway.GetContentIdArguments{
		AlgorithmId: algorithmId,
	}
	client.printJson("GetContentId Request", arguments)

	var reply gateway.GetContentIdReply
	err := client.client.Call("Gateway.GetContentId", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("GetContentId Reply", reply)
	return &reply, nil
}

// Encrypt - encrypt a payload under the gateway key
func (client *Client) Encrypt(plaintext string) (*gateway.EncryptReply, error) {

	arguments := gateway.EncryptArguments{
		Plaintext: plaintext,
	}

	var reply gateway.EncryptReply
	err := client.client.Call("Gateway.Encrypt", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Encrypt Reply", reply)
	return &reply, nil
}

// Deposit - run the pipeline proving token ownership with a signature
func (client *Client) Deposit(algorithmId uint64, timestampMS uint64, signature string) (*gateway.AckReply, error) {

	arguments := gateway.DepositArguments{
		AlgorithmId: algorithmId,
		TimestampMS: timestampMS,
		Signature:   signature,
	}
	client.printJson("Deposit Request", arguments)

	var reply gateway.AckReply
	err := client.client.Call("Gateway.Deposit", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Deposit Reply", reply)
	return &reply, nil
}

// Execute - run the decrypt and dispatch pipeline
func (client *Client) Execute(caller account.Address, executionId uint64, algorithmId uint64) (*gateway.AckReply, error) {

	arguments := gateway.ExecuteArguments{
		Caller:      caller,
		ExecutionId: executionId,
		AlgorithmId: algorithmId,
	}
	client.printJson("Execute Request", arguments)

	var reply gateway.AckReply
	err := client.client.Call("Gateway.Execute", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Execute Reply", reply)
	return &reply, nil
}
