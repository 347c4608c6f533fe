package main

import "github.com/mj1618/winlayout/cmd"

func main() {
	cmd.Execute()
}
