// Command geonym renders and serves the geonym playground.
package main

func main() {
	Execute()
}
