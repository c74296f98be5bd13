package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/l1jgo/psocore/internal/codec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDumpCmd() *cobra.Command {
	var listTypes bool

	cmd := &cobra.Command{
		Use:   "dump <type> <frame-file>",
		Short: "Parse a captured frame and print its fields",
		Args: func(cmd *cobra.Command, args []string) error {
			if listTypes {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTypes {
				fmt.Println(strings.Join(recordTypeNames(), "\n"))
				return nil
			}

			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			rec, err := lookupRecord(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read frame: %w", err)
			}

			if err := codec.Parse(data, rec); err != nil {
				log.Error("parse failed", zap.Error(err))
				return err
			}

			fmt.Println(codec.Debug(rec))
			return nil
		},
	}

	cmd.Flags().BoolVar(&listTypes, "list", false, "list known record type names and exit")
	return cmd
}
