package main

import "ecoclean/cmd"

func main() {
	cmd.Execute()
}
