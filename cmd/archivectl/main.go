package main

import (
	"context"
	"fmt"
	"os"

	"github.com/digitalmuseum/archive-api/cmd/archivectl/cmds"
)

func main() {
	err := cmds.Execute(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
