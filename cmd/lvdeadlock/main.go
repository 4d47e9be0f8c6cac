// Command lvdeadlock is the terminal companion of the deadlock trainer: it
// lists and checks Banker's Algorithm levels, plays a level from a scripted
// process order, analyses resource-allocation graph files and prints the
// high score table.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
