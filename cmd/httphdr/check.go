package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/ioutil"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Replay a header block through the public header API and report rejected lines",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusted, _ := cmd.Flags().GetBool("trusted")

		in, err := openInput(cmd, args)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer in.Close()

		hdrs, err := checkBlock(in, trusted, logger)
		if hdrs != nil {
			logger.Info("header block checked", slog.Any("headers", hdrs))
			fmt.Fprint(cmd.OutOrStdout(), hdrs)
		}
		return errtrace.Wrap(err)
	},
}

func init() {
	checkCmd.Flags().Bool("trusted", false, "Allow restricted headers")
}

// checkBlock adds every line of the header block to a new collection.
// It returns the collection with accepted headers and an error listing all rejected lines.
func checkBlock(r io.Reader, trusted bool, log *slog.Logger) (*header.Collection, error) {
	hdrs := header.New(trusted, header.WithLogger(log))

	var errs []error
	lr := ioutil.NewLineReader(r)
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if line == "" {
			break
		}
		n := lr.LineNo()

		name, value, err := header.SplitColonSeparated(line)
		if err == nil {
			err = hdrs.Add(name, value)
		}
		if err != nil {
			log.Debug("header line rejected", slog.Int("line", n), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("line %d: %w", n, err))
		}
	}
	return hdrs, errtrace.Wrap(errorutil.JoinPrefix("header block rejected:", errs...))
}
