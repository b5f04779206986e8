// Command pmap is the curriculum planner CLI: it inspects a course dataset,
// detects prerequisite cycles, lists candidate courses, and proposes
// semesters under a credit cap.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
