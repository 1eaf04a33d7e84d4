package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("listings-service: %v", err)
		os.Exit(1)
	}
}
