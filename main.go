package main

import "github.com/Rorical/sentinel/cmd"

func main() {
	cmd.Execute()
}
