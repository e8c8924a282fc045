package main

import "golang-actiontrigger/cmd"

func main() {
	cmd.Execute()
}
