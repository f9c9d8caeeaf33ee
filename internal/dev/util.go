package dev

import (
	"encoding/json"
	"log"

	"github.com/tokenmart/market-ledger/internal/config"
)

func Dump(el interface{}) {
	if config.Get().Debug {
		elJson, _ := json.MarshalIndent(el, "", "  ")
		log.Println(string(elJson))
	}
}

func DD(el interface{}) {
	Dump(el)
	panic(nil)
}
