package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/meverselabs/tokenfactory/cmd/config"
	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/contract/factory"
	"github.com/meverselabs/tokenfactory/core/types"
)

// Config is a configuration for the cmd
type Config struct {
	FactoryAccount string
	EngineAccount  string
	LockerAddress  string
}

// factorygen validates a factory deployment plan and prints the hex
// construction args together with the locker account id the deployed
// factory will accept deposits from.
func main() {
	_cfgPath := flag.String("cfg", "./config.toml", "config file path")
	flag.Parse()

	var cfg Config
	if err := config.LoadFile(*_cfgPath, &cfg); err != nil {
		log.Fatalln("load config:", err)
	}

	factoryID := types.AccountID(cfg.FactoryAccount)
	if !factoryID.IsValid() {
		log.Fatalln("invalid factory account:", cfg.FactoryAccount)
	}
	if len(factoryID)+1+common.AddressSize*2 > types.MaxAccountIDLength {
		log.Fatalf("factory account %q leaves no room for token sub-accounts (max %v characters)",
			cfg.FactoryAccount, types.MaxAccountIDLength-1-common.AddressSize*2)
	}
	engineID := types.AccountID(cfg.EngineAccount)
	if !engineID.IsValid() {
		log.Fatalln("invalid engine account:", cfg.EngineAccount)
	}
	locker, err := common.ParseAddress(cfg.LockerAddress)
	if err != nil {
		log.Fatalln("invalid locker address:", err)
	}

	args := &factory.FactoryContractConstruction{
		Engine: engineID,
		Locker: locker,
	}
	bf := &bytes.Buffer{}
	if _, err := args.WriteTo(bf); err != nil {
		log.Fatalln("encode construction args:", err)
	}

	fmt.Println("factory account  :", factoryID)
	fmt.Println("engine account   :", engineID)
	fmt.Println("locker address   :", locker)
	fmt.Println("locker account id:", types.SubAccountID(locker.Hex(), engineID))
	fmt.Println("construction args:", hex.EncodeToString(bf.Bytes()))
}
