package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/purchaseorder"
	"governance/internal/core/domain/model/workorder"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type transitionRow struct {
	from     string
	to       []string
	terminal bool
}

type transitionTable struct {
	kind lifecycle.Kind
	rows []transitionRow
}

func transitionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transitions [kind]",
		Short: "Print the status transition tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tables := transitionTables()
			if len(args) == 1 {
				for _, t := range tables {
					if t.kind.String() == args[0] {
						return writeTransitions(c.OutOrStdout(), []transitionTable{t})
					}
				}
				return fmt.Errorf("unknown kind %q", args[0])
			}
			return writeTransitions(c.OutOrStdout(), tables)
		},
	}
}

func transitionTables() []transitionTable {
	return []transitionTable{
		describe(lifecycle.KindOrder, order.Transitions()),
		describe(lifecycle.KindOrderItem, order.ItemTransitions()),
		describe(lifecycle.KindWorkOrder, workorder.Transitions()),
		describe(lifecycle.KindDesignJob, designjob.Transitions()),
		describe(lifecycle.KindPurchaseOrder, purchaseorder.Transitions()),
		{kind: lifecycle.KindInventory},
	}
}

func describe[S interface {
	cmp.Ordered
	fmt.Stringer
}](kind lifecycle.Kind, table lifecycle.Table[S]) transitionTable {
	states := table.States()
	rows := make([]transitionRow, 0, len(states))
	for _, s := range states {
		row := transitionRow{from: s.String(), terminal: table.IsTerminal(s)}
		for _, next := range table.Successors(s) {
			row.to = append(row.to, next.String())
		}
		rows = append(rows, row)
	}
	return transitionTable{kind: kind, rows: rows}
}

func writeTransitions(w io.Writer, tables []transitionTable) error {
	heading := color.New(color.Bold)
	terminal := color.New(color.FgYellow)

	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := heading.Fprintln(w, t.kind.String()); err != nil {
			return err
		}
		if len(t.rows) == 0 {
			if _, err := fmt.Fprintln(w, "  (no status lifecycle)"); err != nil {
				return err
			}
			continue
		}

		width := 0
		for _, r := range t.rows {
			width = max(width, len(r.from))
		}
		for _, r := range t.rows {
			target := strings.Join(r.to, ", ")
			if r.terminal {
				target = terminal.Sprint("terminal")
			}
			if _, err := fmt.Fprintf(w, "  %-*s -> %s\n", width, r.from, target); err != nil {
				return err
			}
		}
	}
	return nil
}
