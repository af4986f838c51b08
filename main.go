package main

import "translation-manager/cmd"

func main() {
	cmd.Execute()
}
