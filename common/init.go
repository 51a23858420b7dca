package common

import (
	"github.com/inconshreveable/log15"
)

var InTest bool

var log log15.Logger = log15.New("module", "common")

func init() {
	log.SetHandler(log15.DiscardHandler())
}

func Log() log15.Logger {
	return log
}
