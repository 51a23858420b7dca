package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/nearanywhere/common"
	"github.com/spikeekips/nearanywhere/keypair"
)

type testConfig struct {
	suite.Suite
}

func (t *testConfig) TestDefault() {
	c, err := newConfigFromBytes([]byte(""))
	t.NoError(err)
	t.Equal(defaultConfig(), c)
	t.Equal("https://rpc.testnet.near.org", c.RPC.Endpoint)
	t.Equal(keypair.ED25519, c.KeyType)
}

func (t *testConfig) TestLoad() {
	y := `
network-id: mainnet
key-type: SECP256K1
rpc:
  timeout: 3s
  headers:
    x-api-key: findme
log:
  level: debug
  format: json
`

	c, err := newConfigFromBytes([]byte(y))
	t.NoError(err)
	t.Equal("mainnet", c.NetworkID)
	t.Equal(keypair.SECP256K1, c.KeyType)
	t.Equal("https://rpc.mainnet.near.org", c.RPC.Endpoint)
	t.Equal(time.Second*3, c.RPC.Timeout)
	t.Equal("findme", c.RPC.Headers["x-api-key"])
	t.Equal("debug", c.Log.Level)
	t.Equal("json", c.Log.Format)
}

func (t *testConfig) TestExplicitEndpoint() {
	y := `
network-id: custom
rpc:
  endpoint: http://localhost:3030
`

	c, err := newConfigFromBytes([]byte(y))
	t.NoError(err)
	t.Equal("http://localhost:3030", c.RPC.Endpoint)
	t.Equal(defaultConfig().RPC.Timeout, c.RPC.Timeout)
}

func (t *testConfig) TestInvalid() {
	_, err := newConfigFromBytes([]byte("key-type: rsa"))
	t.Contains(err.Error(), "unknown key type")

	_, err = newConfigFromBytes([]byte("rpc:\n  endpoint: ftp://node"))
	t.Contains(err.Error(), "http or https")

	_, err = newConfigFromBytes([]byte("log:\n  format: xml"))
	t.Contains(err.Error(), "invalid log format")

	_, err = newConfigFromBytes([]byte("log:\n  level: loud"))
	t.Contains(err.Error(), "invalid log level")
}

func (t *testConfig) TestVersion() {
	c, err := newConfigFromBytes([]byte("version: " + common.Current.String()))
	t.NoError(err)
	t.Equal(common.Current.String(), c.Version)

	_, err = newConfigFromBytes([]byte("version: 0.0.1"))
	t.NoError(err)

	_, err = newConfigFromBytes([]byte("version: 999.0.0"))
	t.Contains(err.Error(), "config requires newer nearkey")

	_, err = newConfigFromBytes([]byte("version: findme"))
	t.Contains(err.Error(), "invalid config version")
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(testConfig))
}
