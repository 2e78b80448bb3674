package utils

import (
	"time"

	"github.com/anyswap/ripple-signer/log"
	"github.com/anyswap/ripple-signer/params"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	// LogFileFlag --logfile
	LogFileFlag = &cli.StringFlag{
		Name:  "logfile",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag --logrotation
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "logrotation",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag --logmaxage
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "logmaxage",
		Usage: "log max age (unit hour)",
		Value: 7 * 24,
	}

	// CommonLogFlags common log flags
	CommonLogFlags = []cli.Flag{
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
		LogFileFlag,
		LogRotationFlag,
		LogMaxAgeFlag,
	}
)

// SetLogger sets the logger from the log flags. A flag set on the command
// line wins over the [Log] section of the config.
func SetLogger(ctx *cli.Context, config *params.Config) error {
	logConfig := *params.DefaultConfig().Log
	if config != nil && config.Log != nil {
		logConfig = *config.Log
	}
	if ctx.IsSet(VerbosityFlag.Name) || config == nil {
		logConfig.Verbosity = uint32(ctx.Uint64(VerbosityFlag.Name))
	}
	if ctx.IsSet(JSONFormatFlag.Name) || config == nil {
		logConfig.JSONFormat = ctx.Bool(JSONFormatFlag.Name)
	}
	if ctx.IsSet(ColorFormatFlag.Name) || config == nil {
		logConfig.ColorFormat = ctx.Bool(ColorFormatFlag.Name)
	}
	if ctx.IsSet(LogFileFlag.Name) {
		logConfig.LogFile = ctx.String(LogFileFlag.Name)
	}
	if ctx.IsSet(LogRotationFlag.Name) || logConfig.RotationHours == 0 {
		logConfig.RotationHours = ctx.Uint64(LogRotationFlag.Name)
	}
	if ctx.IsSet(LogMaxAgeFlag.Name) || logConfig.MaxAgeHours == 0 {
		logConfig.MaxAgeHours = ctx.Uint64(LogMaxAgeFlag.Name)
	}

	if logConfig.LogFile != "" {
		err := log.SetLogFile(logConfig.LogFile,
			time.Duration(logConfig.RotationHours)*time.Hour,
			time.Duration(logConfig.MaxAgeHours)*time.Hour)
		if err != nil {
			return err
		}
	}
	log.SetLogger(logConfig.Verbosity, logConfig.JSONFormat, logConfig.ColorFormat)
	return nil
}

// GetConfigFilePath specified by `-c|--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// InitConfigAndLogger loads the config file if one is given (defaults
// otherwise) and sets up the logger.
func InitConfigAndLogger(ctx *cli.Context) (*params.Config, error) {
	var config *params.Config
	if configFile := GetConfigFilePath(ctx); configFile != "" {
		var err error
		if config, err = params.ParseConfig(configFile); err != nil {
			return nil, err
		}
	}
	if err := SetLogger(ctx, config); err != nil {
		return nil, err
	}
	if config == nil {
		config = params.DefaultConfig()
	}
	params.SetConfig(config)
	log.Debug("config initialized", "configFile", GetConfigFilePath(ctx))
	return config, nil
}
