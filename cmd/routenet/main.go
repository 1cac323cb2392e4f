// Command routenet answers routing queries over an airline route file.
//
//	routenet routes
//	routenet mst [--method kruskal|prim]
//	routenet path Pittsburgh Erie --by price
//	routenet budget 250 --from Pittsburgh
//	routenet add Pittsburgh Altoona 30 75
//	routenet remove Pittsburgh Altoona
//	routenet config init --data routes.txt
package main

import (
	"os"
)

func main() {
	// Cobra prints the error and usage itself.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
