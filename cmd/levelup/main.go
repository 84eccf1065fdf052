package main

import "github.com/elonmusk64/LevelUP-Club/cmd/levelup/root"

func main() {
	root.Execute()
}
