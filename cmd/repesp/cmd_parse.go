package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/yongjiguan/repESP/format"
	"github.com/yongjiguan/repESP/gausslog"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var scheme string
	var strict bool
	var configFile string

	cmd := &cobra.Command{
		Use:   "parse <log>...",
		Short: "Parse Gaussian logs and dump the structured report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("repesp")
			conf, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				conf.Format = outputFormat
			}
			if cmd.Flags().Changed("scheme") {
				conf.Scheme = gausslog.ChargeScheme(scheme)
			}
			if cmd.Flags().Changed("strict") {
				conf.Strict = strict
			}

			failed := 0
			for _, filename := range args {
				rep, err := gausslog.ParseFile(filename)
				if err != nil {
					log.Errorf("%s: %v", filename, err)
					failed++
					continue
				}
				log.Infof("%s: %d atoms, %d diagnostics", filename, len(rep.Atoms), len(rep.Diagnostics))

				var enc format.Encoder
				switch conf.Format {
				case "json":
					enc = format.NewJSONEncoder(os.Stdout)
				case "charges":
					enc = format.NewChargesEncoder(os.Stdout, conf.Scheme)
				default:
					return fmt.Errorf("unknown format: %s", conf.Format)
				}
				if err := enc.Encode(rep); err != nil {
					return fmt.Errorf("encode %s: %w", filename, err)
				}

				if conf.Strict && len(rep.Diagnostics) > 0 {
					for _, d := range rep.Diagnostics {
						log.Errorf("%s: %s: %s", filename, d.Section, d.Cause)
					}
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, charges)")
	cmd.Flags().StringVar(&scheme, "scheme", string(gausslog.Mulliken), "charge scheme for the charges format")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat diagnostics as errors")
	cmd.Flags().StringVar(&configFile, "config", "repesp.toml", "config file")

	return cmd
}
