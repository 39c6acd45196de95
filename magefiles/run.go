//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the hello example with the bundled configuration.
func (Run) Example() error {
	fmt.Println("Run example...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "assets/hello.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
