package main

import "nathanbeddoewebdev/cfhost/cmd"

func main() {
	cmd.Execute()
}
