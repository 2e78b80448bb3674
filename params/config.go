package params

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/ripple-signer/common"
	"github.com/anyswap/ripple-signer/log"
)

const (
	defaultVerbosity            = 4
	defaultRetryTimes           = 3
	defaultRetryIntervalSeconds = 3
	defaultDialTimeoutSeconds   = 10
	defaultRotationHours        = 24
	defaultMaxAgeHours          = 7 * 24

	// KeyTypeSecp256k1 is the default signing key type
	KeyTypeSecp256k1 = "secp256k1"
	// KeyTypeEd25519 ed25519 signing key type
	KeyTypeEd25519 = "ed25519"
)

var (
	signerConfig      *Config
	loadConfigStarter sync.Once
)

// Config config items (decode from toml file)
type Config struct {
	Log    *LogConfig    `toml:",omitempty" json:",omitempty"`
	Remote *RemoteConfig `toml:",omitempty" json:",omitempty"`
	Signer *SignerConfig `toml:",omitempty" json:",omitempty"`
}

// LogConfig log config
type LogConfig struct {
	Verbosity     uint32
	JSONFormat    bool
	ColorFormat   bool
	LogFile       string `toml:",omitempty" json:",omitempty"`
	RotationHours uint64
	MaxAgeHours   uint64
}

// RemoteConfig rippled endpoints used to submit signed transactions
type RemoteConfig struct {
	Websockets           []string `toml:",omitempty" json:",omitempty"`
	JSONRPCs             []string `toml:",omitempty" json:",omitempty"`
	RetryTimes           int
	RetryIntervalSeconds uint64
	DialTimeoutSeconds   uint64
}

// SignerConfig signer config
type SignerConfig struct {
	KeyType         string
	VerifyAfterSign bool
}

// DefaultConfig returns a config with every section filled with defaults.
func DefaultConfig() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

func (c *Config) setDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{Verbosity: defaultVerbosity}
	}
	if c.Log.RotationHours == 0 {
		c.Log.RotationHours = defaultRotationHours
	}
	if c.Log.MaxAgeHours == 0 {
		c.Log.MaxAgeHours = defaultMaxAgeHours
	}
	if c.Remote == nil {
		c.Remote = &RemoteConfig{}
	}
	if c.Remote.RetryTimes == 0 {
		c.Remote.RetryTimes = defaultRetryTimes
	}
	if c.Remote.RetryIntervalSeconds == 0 {
		c.Remote.RetryIntervalSeconds = defaultRetryIntervalSeconds
	}
	if c.Remote.DialTimeoutSeconds == 0 {
		c.Remote.DialTimeoutSeconds = defaultDialTimeoutSeconds
	}
	if c.Signer == nil {
		c.Signer = &SignerConfig{}
	}
	if c.Signer.KeyType == "" {
		c.Signer.KeyType = KeyTypeSecp256k1
	}
}

// GetConfig get signer config
func GetConfig() *Config {
	if signerConfig == nil {
		return DefaultConfig()
	}
	return signerConfig
}

// SetConfig set signer config
func SetConfig(config *Config) {
	signerConfig = config
}

// GetRemoteConfig get remote config
func GetRemoteConfig() *RemoteConfig {
	return GetConfig().Remote
}

// GetSignerConfig get signer config
func GetSignerConfig() *SignerConfig {
	return GetConfig().Signer
}

// ParseConfig decodes configFile, applies defaults and checks the result.
func ParseConfig(configFile string) (*Config, error) {
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("config file %v not exist", configFile)
	}
	config := &Config{}
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, fmt.Errorf("toml DecodeFile: %w", err)
	}
	config.setDefaults()
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig load config
func LoadConfig(configFile string) *Config {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Fatalf("LoadConfig error: no config file specified")
		}
		log.Println("Config file is", configFile)
		config, err := ParseConfig(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		SetConfig(config)
		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))
		log.Info("Check config success", "configFile", configFile)
	})
	return signerConfig
}
