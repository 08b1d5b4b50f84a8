package main

import "github.com/kilobytetools/scratch/cmd/scratch/cmd"

func main() {
	cmd.Execute()
}
