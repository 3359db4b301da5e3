package main

import "github.com/naka-gawa/github-profile-card/cmd"

func main() {
	cmd.Execute()
}
