package main

import (
	"github.com/NVIDIA/queuestat/pkg/cli"
)

func main() {
	cli.Execute()
}
