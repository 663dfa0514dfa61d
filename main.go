package main

import "github.com/alexiusacademia/gospan/cmd"

func main() {
	cmd.Execute()
}
