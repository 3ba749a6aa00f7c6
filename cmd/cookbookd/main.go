package main

import (
	"log"

	"github.com/mchmarny/cookbook/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
