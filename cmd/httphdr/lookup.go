package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/log"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [name...]",
	Short: "Print registry metadata of headers, all known headers without arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		var infos []header.Info
		if len(args) == 0 {
			infos = header.Known()
		}
		for _, name := range args {
			infos = append(infos, header.Resolve(name))
		}
		return errtrace.Wrap(printInfos(cmd.OutOrStdout(), infos))
	},
}

func printInfos(w io.Writer, infos []header.Info) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTIONS\tRESTRICTED\tMULTI-VALUE\tKNOWN")
	for _, info := range infos {
		_, known := header.Lookup(string(info.Name))
		logger.Debug("header info", slog.Any("info", log.FmtValue(info, false)))
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\t%v\n", info.Name, info.Dirs, info.Restricted, info.Multi, known)
	}
	return errtrace.Wrap(tw.Flush())
}
