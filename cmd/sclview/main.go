// sclview prints the data model of SCL/ICD files as trees.
package main

import (
	"os"

	"github.com/golang/glog"
)

var version = "0.1.0"

func main() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
