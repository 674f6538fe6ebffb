package main

import "easy-ftp/cmd"

func main() {
	cmd.Execute()
}
