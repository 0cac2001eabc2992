package main

import "github.com/Dev-Re2906/hardhat/cmd"

func main() {
	cmd.Execute()
}
