package main

import "github.com/tomekjarosik/tildesweep/pkg/cmd"

func main() {
	cmd.Execute(cmd.InitializeCommands())
}
