//go:build test
// +build test

package common

import (
	"github.com/inconshreveable/log15"
)

func init() {
	InTest = true
}

// SetTestLogger sends the logs of logger to stdout in the terminal format.
func SetTestLogger(logger log15.Logger) {
	f, _ := LogFormatter("terminal")
	handler, _ := LogHandler(f, "")
	logger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, handler))
}
