package main

import (
	"encoding/json"
	"net/url"
	"os"
	"time"

	"github.com/inconshreveable/log15"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/nearanywhere/common"
	"github.com/spikeekips/nearanywhere/jsonrpc"
	"github.com/spikeekips/nearanywhere/keypair"
)

var networkEndpoints = map[string]string{
	"mainnet":  "https://rpc.mainnet.near.org",
	"testnet":  "https://rpc.testnet.near.org",
	"betanet":  "https://rpc.betanet.near.org",
	"localnet": "http://127.0.0.1:3030",
}

const defaultNetworkID = "testnet"

type Config struct {
	// Version is the lowest nearkey version which can read the config.
	Version   string          `yaml:"version,omitempty" json:"version,omitempty"`
	NetworkID string          `yaml:"network-id" json:"network_id"`
	KeyType   keypair.KeyType `yaml:"key-type" json:"key_type"`
	RPC       RPCConfig       `yaml:"rpc" json:"rpc"`
	Log       LogConfig       `yaml:"log" json:"log"`
}

func newConfigFromBytes(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}

	c = c.merge(defaultConfig())

	if err := c.IsValid(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func loadConfig(f string) (Config, error) {
	if len(f) < 1 {
		return defaultConfig(), nil
	}

	b, err := os.ReadFile(f)
	if err != nil {
		return Config{}, err
	}

	return newConfigFromBytes(b)
}

func defaultConfig() Config {
	return Config{
		NetworkID: defaultNetworkID,
		KeyType:   keypair.ED25519,
		RPC: RPCConfig{
			Endpoint: networkEndpoints[defaultNetworkID],
			Timeout:  jsonrpc.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  log15.LvlError.String(),
			Format: "terminal",
		},
	}
}

func (c Config) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}

func (c Config) IsValid() error {
	if len(c.Version) > 0 {
		v, err := common.NewVersion(c.Version)
		if err != nil {
			return xerrors.Errorf("invalid config version: %w", err)
		} else if common.Current.LessThan(v) {
			return xerrors.Errorf(
				"config requires newer nearkey; required=%s current=%s", v, common.Current,
			)
		}
	}

	if len(c.NetworkID) < 1 {
		return xerrors.Errorf("empty network-id")
	}

	if err := c.KeyType.IsValid(); err != nil {
		return err
	}

	if err := c.RPC.IsValid(); err != nil {
		return err
	}

	return c.Log.IsValid()
}

// merge fills the empty fields of c from b. The endpoint of a known
// network-id is used before the endpoint of b.
func (c Config) merge(b Config) Config {
	if len(c.NetworkID) < 1 {
		c.NetworkID = b.NetworkID
	}

	if len(c.RPC.Endpoint) < 1 {
		if e, found := networkEndpoints[c.NetworkID]; found {
			c.RPC.Endpoint = e
		}
	}

	c.RPC = c.RPC.merge(b.RPC)
	c.Log = c.Log.merge(b.Log)

	return c
}

func (c Config) newClient() *jsonrpc.Client {
	opts := []jsonrpc.Option{jsonrpc.WithTimeout(c.RPC.Timeout)}
	for k, v := range c.RPC.Headers {
		opts = append(opts, jsonrpc.WithHeader(k, v))
	}

	return jsonrpc.NewClient(c.RPC.Endpoint, opts...)
}

type RPCConfig struct {
	Endpoint string            `yaml:"endpoint" json:"endpoint"`
	Timeout  time.Duration     `yaml:"timeout" json:"timeout"`
	Headers  map[string]string `yaml:"headers" json:"headers,omitempty"`
}

func (rc RPCConfig) IsValid() error {
	u, err := url.Parse(rc.Endpoint)
	if err != nil {
		return xerrors.Errorf("invalid rpc endpoint: %w", err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return xerrors.Errorf("rpc endpoint should be http or https; endpoint=%q", rc.Endpoint)
	}

	if rc.Timeout < 0 {
		return xerrors.Errorf("rpc timeout should not be negative; timeout=%q", rc.Timeout)
	}

	return nil
}

func (rc RPCConfig) merge(b RPCConfig) RPCConfig {
	if len(rc.Endpoint) < 1 {
		rc.Endpoint = b.Endpoint
	}

	if rc.Timeout == 0 {
		rc.Timeout = b.Timeout
	}

	if len(rc.Headers) < 1 {
		rc.Headers = b.Headers
	}

	return rc
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Out    string `yaml:"out" json:"out,omitempty"`
}

func (lc LogConfig) IsValid() error {
	if _, err := log15.LvlFromString(lc.Level); err != nil {
		return xerrors.Errorf("invalid log level: %w", err)
	}

	var f FlagLogFormat

	return f.Set(lc.Format)
}

func (lc LogConfig) merge(b LogConfig) LogConfig {
	if len(lc.Level) < 1 {
		lc.Level = b.Level
	}

	if len(lc.Format) < 1 {
		lc.Format = b.Format
	}

	if len(lc.Out) < 1 {
		lc.Out = b.Out
	}

	return lc
}
