package params

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/anyswap/ripple-signer/crypto"
)

// CheckConfig check config
func (c *Config) CheckConfig() error {
	if c.Log != nil && c.Log.Verbosity > 6 {
		return fmt.Errorf("invalid log verbosity %v, must be in range [0, 6]", c.Log.Verbosity)
	}
	if c.Remote != nil {
		if err := c.Remote.CheckConfig(); err != nil {
			return err
		}
	}
	if c.Signer != nil {
		if err := c.Signer.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check remote config
func (c *RemoteConfig) CheckConfig() error {
	if c.RetryTimes < 0 {
		return errors.New("remote 'RetryTimes' must not be negative")
	}
	for _, endpoint := range c.Websockets {
		if err := checkURL(endpoint, "ws", "wss"); err != nil {
			return err
		}
	}
	for _, endpoint := range c.JSONRPCs {
		if err := checkURL(endpoint, "http", "https"); err != nil {
			return err
		}
	}
	return nil
}

// HasEndpoints is true if at least one submit endpoint is configured.
func (c *RemoteConfig) HasEndpoints() bool {
	return len(c.Websockets)+len(c.JSONRPCs) > 0
}

// CheckConfig check signer config
func (c *SignerConfig) CheckConfig() error {
	if _, err := crypto.ParseKeyType(c.KeyType); err != nil {
		return fmt.Errorf("signer 'KeyType' %q is not %v or %v", c.KeyType, KeyTypeSecp256k1, KeyTypeEd25519)
	}
	return nil
}

// GetKeyType returns the configured key type, secp256k1 when unset.
func (c *SignerConfig) GetKeyType() crypto.KeyType {
	keyType, _ := crypto.ParseKeyType(c.KeyType)
	return keyType
}

func checkURL(endpoint string, schemes ...string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	for _, scheme := range schemes {
		if u.Scheme == scheme && u.Host != "" {
			return nil
		}
	}
	return fmt.Errorf("invalid endpoint %q: scheme must be one of %v", endpoint, schemes)
}
