//go:build debug

package bounce

import (
	"fmt"
	"log"
)

func assert(truth bool, msg ...interface{}) {
	if !truth {
		panic(fmt.Sprint("Assertion failed: ", msg))
	}
}

func debugf(format string, args ...interface{}) {
	log.Printf("bounce: "+format, args...)
}
