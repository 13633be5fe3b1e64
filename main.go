package main

import "github.com/ice1217/BardSpeak/cmd"

func main() {
	cmd.Execute()
}
