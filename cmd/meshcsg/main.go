package main

import "github.com/arl/go-meshcsg/cmd/meshcsg/cmd"

func main() {
	cmd.Execute()
}
