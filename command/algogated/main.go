// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/algogate/algogated/account"
	"github.com/algogate/algogated/algorithm"
	"github.com/algogate/algogated/catalog"
	"github.com/algogate/algogated/execution"
	"github.com/algogate/algogated/gateway"
	"github.com/algogate/algogated/proofing"
	"github.com/algogate/algogated/retrieve"
	"github.com/algogate/algogated/rpc"
	"github.com/algogate/algogated/sink"
	"github.com/algogate/algogated/storage"
	"github.com/algogate/algogated/vault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// token registries
	log.Info("initialise algorithm registry")
	err = algorithm.Initialise(algorithm.Handles{
		Owners:      storage.Pool.AlgorithmOwners,
		Meta:        storage.Pool.AlgorithmMeta,
		Content:     storage.Pool.AlgorithmContent,
		Executions:  storage.Pool.AlgorithmExecutions,
		Identifiers: storage.Pool.Identifiers,
	})
	if nil != err {
		log.Criticalf("algorithm initialise error: %s", err)
		exitwithstatus.Message("algorithm initialise error: %s", err)
	}
	defer algorithm.Finalise()

	log.Info("initialise execution registry")
	err = execution.Initialise(execution.Handles{
		Owners:      storage.Pool.ExecutionOwners,
		Parents:     storage.Pool.ExecutionParents,
		Identifiers: storage.Pool.Identifiers,
	}, algorithm.Get())
	if nil != err {
		log.Criticalf("execution initialise error: %s", err)
		exitwithstatus.Message("execution initialise error: %s", err)
	}
	defer execution.Finalise()

	log.Info("initialise catalog")
	err = catalog.Initialise(catalog.Handles{
		Parts:       storage.Pool.Parts,
		Owners:      storage.Pool.PartOwners,
		Children:    storage.Pool.PartChildren,
		Identifiers: storage.Pool.Identifiers,
	})
	if nil != err {
		log.Criticalf("catalog initialise error: %s", err)
		exitwithstatus.Message("catalog initialise error: %s", err)
	}
	defer catalog.Finalise()

	// the gateway and its collaborators
	gatewayConfiguration, err := buildGatewayConfiguration(&theConfiguration.Gateway)
	if nil != err {
		log.Criticalf("gateway configuration error: %s", err)
		exitwithstatus.Message("gateway configuration error: %s", err)
	}

	log.Info("initialise gateway")
	err = gateway.Initialise(*gatewayConfiguration)
	if nil != err {
		log.Criticalf("gateway initialise error: %s", err)
		exitwithstatus.Message("gateway initialise error: %s", err)
	}
	defer gateway.Finalise()

	// start up the rpc background processes
	log.Info("initialise rpc")
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// assemble the gateway collaborators from the configuration
func buildGatewayConfiguration(options *GatewayType) (*gateway.Config, error) {

	secret, err := hex.DecodeString(options.Secret)
	if nil != err {
		return nil, fmt.Errorf("gateway secret is not hex: %s", err)
	}
	salt, err := hex.DecodeString(options.Salt)
	if nil != err {
		return nil, fmt.Errorf("gateway salt is not hex: %s", err)
	}

	v, err := vault.New(secret, salt)
	if nil != err {
		return nil, err
	}

	owner, err := account.AddressFromHexString(options.Owner)
	if nil != err {
		return nil, fmt.Errorf("gateway owner: %q error: %s", options.Owner, err)
	}
	registryAddress, err := account.AddressFromHexString(options.RegistryAddress)
	if nil != err {
		return nil, fmt.Errorf("registry address: %q error: %s", options.RegistryAddress, err)
	}

	return &gateway.Config{
		Owner:            owner,
		OwnerRestriction: options.OwnerRestriction,
		RegistryAddress:  registryAddress,
		Vault:            v,
		Fetcher:          retrieve.NewFetcher(options.RetrievalEndpoint),
		Sink:             sink.New(options.SinkEndpoint),
		Query:            proofing.NewOwnerQuery(options.ChainEndpoint),
		Registry:         gateway.NewRegistry(algorithm.Get(), execution.Get()),
	}, nil
}
