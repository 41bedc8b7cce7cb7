package main

import cmd "ogrep/cmd/ogrep"

func main() {
	cmd.Execute()
}
