//go:build !debug

package bounce

func assert(bool, ...interface{}) {}

func debugf(string, ...interface{}) {}
