package main

import (
	"fmt"
	"os"

	"jlowell/ledgersum/cmd/categorize"
	"jlowell/ledgersum/cmd/forecast"
	"jlowell/ledgersum/cmd/recurrents"
	"jlowell/ledgersum/cmd/root"
	"jlowell/ledgersum/cmd/summarize"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(recurrents.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(forecast.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
