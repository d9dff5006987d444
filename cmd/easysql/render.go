package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	easysql "github.com/koustreak/EasySQL"
)

// newTableWriter returns a table.Writer with the shell's house style.
func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	return tw
}

// renderResult prints a Result in a shape matching its kind.
func renderResult(res *easysql.Result) {
	tw := newTableWriter()

	if res == nil {
		tw.AppendHeader(table.Row{"No result"})
		tw.AppendRow(table.Row{"constraint violation"})
		fmt.Println(tw.Render())
		return
	}

	switch res.Kind {
	case easysql.KindSelect:
		header := table.Row{}
		for _, col := range res.Columns {
			header = append(header, col)
		}
		tw.AppendHeader(header)

		for _, rowMap := range res.Rows {
			row := table.Row{}
			for _, col := range res.Columns {
				row = append(row, renderValue(rowMap[col]))
			}
			tw.AppendRow(row)
		}
		tw.AppendFooter(table.Row{fmt.Sprintf("%d row(s)", len(res.Rows))})

	case easysql.KindInsert:
		tw.AppendHeader(table.Row{"Last Insert ID"})
		tw.AppendRow(table.Row{res.LastInsertID})

	case easysql.KindUpdate, easysql.KindDelete:
		tw.AppendHeader(table.Row{"Rows Affected"})
		tw.AppendRow(table.Row{res.RowsAffected})

	default:
		tw.AppendHeader(table.Row{"OK"})
		tw.AppendRow(table.Row{"OK"})
	}

	fmt.Println(tw.Render())
}

func renderValue(v any) any {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return fmt.Sprintf("0x%x", val)
	default:
		return v
	}
}
