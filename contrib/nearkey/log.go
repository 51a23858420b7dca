package main

import (
	"github.com/inconshreveable/log15"

	"github.com/spikeekips/nearanywhere/common"
)

var log log15.Logger = log15.New("module", "main")

func init() {
	log.SetHandler(log15.DiscardHandler())
}

// setupLogging applies the log flags to every logger of the module.
func setupLogging(level log15.Lvl, format, out string) error {
	fmtr, err := common.LogFormatter(format)
	if err != nil {
		return err
	}

	handler, err := common.LogHandler(fmtr, out)
	if err != nil {
		return err
	}

	handler = log15.CallerFileHandler(handler)

	for _, l := range loggers() {
		common.SetLogger(l, level, handler)
	}

	return nil
}
