package main

import (
	"encoding/json"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Ingest a header block as the message layer does and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hdrs, err := readBlock(cmd, args)
		if err != nil {
			return errtrace.Wrap(err)
		}
		_, err = hdrs.WriteTo(cmd.OutOrStdout())
		return errtrace.Wrap(err)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Ingest a header block and write its snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		hdrs, err := readBlock(cmd, args)
		if err != nil {
			return errtrace.Wrap(err)
		}

		data, err := encodeSnapshot(hdrs.Export(), format)
		if err != nil {
			return errtrace.Wrap(err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return errtrace.Wrap(err)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{dumpCmd, exportCmd} {
		cmd.Flags().Bool("response", false, "Treat the block as response headers")
	}
	exportCmd.Flags().StringP("format", "f", "json", "Snapshot format: json or msgpack")
}

func readBlock(cmd *cobra.Command, args []string) (*header.Collection, error) {
	response, _ := cmd.Flags().GetBool("response")

	in, err := openInput(cmd, args)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer in.Close()

	hdrs, err := header.Read(in, response, header.WithLogger(logger))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	logger.Debug("header block read", slog.Any("headers", hdrs))
	return hdrs, nil
}

const errUnknownFormat errorutil.Error = "unknown snapshot format"

func encodeSnapshot(s header.Snapshot, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.Marshal(s)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return append(data, '\n'), nil
	case "msgpack":
		return errtrace.Wrap2(s.MarshalBinary())
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errUnknownFormat, "%q", format))
	}
}
