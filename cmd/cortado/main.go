/*
File    : cortado/cmd/cortado/main.go
Package : main

Entry point, grounded on the teacher's main/main.go dispatch shape but
delegating all subcommand logic to cobra (root.go).
*/
package main

import "os"

func main() {
	os.Exit(Execute())
}
