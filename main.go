package main

import "github.com/protsap/contactbook/cmd"

func main() {
	cmd.Execute()
}
