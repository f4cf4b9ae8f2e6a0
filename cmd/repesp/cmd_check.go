package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/yongjiguan/repESP/gausslog"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <log>...",
		Short: "Report which sections each log contains",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("repesp")
			failed := 0
			for _, filename := range args {
				rep, err := gausslog.ParseFile(filename)
				if err != nil {
					log.Errorf("%s: %v", filename, err)
					failed++
					continue
				}
				fmt.Printf("%s:\n", filename)
				printCompleteness(rep)
				for _, d := range rep.Diagnostics {
					fmt.Printf("  diagnostic %s line %d: %s\n", d.Section, d.Line, d.Cause)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

func printCompleteness(rep *gausslog.Report) {
	sections := make([]gausslog.SectionKind, 0, len(rep.Completeness))
	for kind := range rep.Completeness {
		sections = append(sections, kind)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].String() < sections[j].String()
	})
	for _, kind := range sections {
		fmt.Printf("  %s: %s\n", kind, rep.Completeness[kind])
	}
}
