package main

import (
	"log"

	"github.com/NVIDIA/queuestat/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
