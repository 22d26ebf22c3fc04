// Command tvmaze is a small CLI over the go-tvmaze library,
// it prints raw API responses as indented JSON.
package main

func main() {
	Execute()
}
