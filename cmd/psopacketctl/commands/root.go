// Package commands implements psopacketctl's subcommands: inspecting
// captured frames and exercising the transport ciphers, against the
// same codec and cipher packages the server core uses.
package commands

import (
	"github.com/l1jgo/psocore/internal/toolconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cfgPath string

// Root builds the psopacketctl command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "psopacketctl",
		Short: "Inspect and exercise the PSOBB packet codec and transport ciphers",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a psopacketctl.toml config file")
	root.AddCommand(newDumpCmd())
	root.AddCommand(newCipherCmd())
	return root
}

func newLogger() (*zap.Logger, error) {
	cfg, err := toolconfig.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Logging.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
