package sample

import (
	"fmt"
	"io"
	"os"
)

// stdout overrides the printing functions' destination when set.
var stdout io.Writer

func output() io.Writer {
	if stdout != nil {
		return stdout
	}

	return os.Stdout
}

//nolint:unused // unexported fixture
func topLevelFunction() {
	fmt.Fprintln(output(), "top level")
}

//nolint:unused // unexported fixture
func anotherFunction() {
	fmt.Fprintln(output(), "another")
}

// PublicFunction prints "public" to standard output.
func PublicFunction() {
	fmt.Fprintln(output(), "public")
}
