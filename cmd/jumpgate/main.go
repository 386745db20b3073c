package main

import (
	"context"
	"log"
	"os"
)

const (
	classicKey   = "classic"
	fallbackKey  = "fallback"
	itersKey     = "iters"
	consumersKey = "consumers"
	providersKey = "providers"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
