package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker <probe|deploy> [args]")
	}

	switch os.Args[1] {
	case "probe":
		RunProbe()
	case "deploy":
		RunDeploy(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
