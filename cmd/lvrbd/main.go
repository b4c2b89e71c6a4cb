// lvrbd computes source-to-destination availability of node-failure
// networks described in YAML topology files.
//
// Usage:
//
//	lvrbd eval -t net.yaml [--src=1 --dst=4] [--algorithm=sdp] [--mode=parallel]
//	lvrbd cuts -t net.yaml --src=1 --dst=4 [--order=2] [--reference]
//	lvrbd paths -t net.yaml --src=1 --dst=4 [--simple]
//	lvrbd expr -t net.yaml --src=1 --dst=4 [--algorithm=mcs]
//	lvrbd generate --kind=ladder --n=4 [--availability=0.9] [-o net.yaml]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
