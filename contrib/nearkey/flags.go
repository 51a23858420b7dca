package main

import (
	"strings"

	"github.com/inconshreveable/log15"
	"golang.org/x/xerrors"

	"github.com/spikeekips/nearanywhere/keypair"
)

var (
	flagLogLevel  FlagLogLevel  = FlagLogLevel{lvl: log15.LvlError}
	flagLogFormat FlagLogFormat = FlagLogFormat{f: "terminal"}
	flagLogOut    string
	flagConfig    string
)

type FlagLogLevel struct {
	lvl log15.Lvl
}

func (f FlagLogLevel) String() string {
	return f.lvl.String()
}

func (f *FlagLogLevel) Set(v string) error {
	lvl, err := log15.LvlFromString(v)
	if err != nil {
		return err
	}

	f.lvl = lvl

	return nil
}

func (f FlagLogLevel) Type() string {
	return "log-level"
}

type FlagLogFormat struct {
	f string
}

func (f FlagLogFormat) String() string {
	return f.f
}

func (f *FlagLogFormat) Set(v string) error {
	s := strings.ToLower(v)
	switch s {
	case "json":
	case "terminal":
	default:
		return xerrors.Errorf("invalid log format: %q", v)
	}

	f.f = s

	return nil
}

func (f FlagLogFormat) Type() string {
	return "log-format"
}

type FlagKeyType struct {
	kt  keypair.KeyType
	set bool
}

func (f FlagKeyType) String() string {
	return f.kt.String()
}

func (f *FlagKeyType) Set(v string) error {
	kt, err := keypair.ParseKeyType(v)
	if err != nil {
		return err
	}

	f.kt = kt
	f.set = true

	return nil
}

func (f FlagKeyType) Type() string {
	return "key-type"
}
