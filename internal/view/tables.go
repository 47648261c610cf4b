// Package view renders store snapshots for humans: terminal tables for the
// one-shot browse mode, plus the fixed-point amount formatting shared with
// the gateway.
package view

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/tzscout/tzscout/internal/explorer"
	"github.com/tzscout/tzscout/internal/router"
)

// Render writes the part of the snapshot the route displays as tables.
func Render(w io.Writer, route router.Route, st explorer.State) {
	switch route.Kind {
	case router.KindOverview:
		renderOverview(w, st)
	case router.KindDetails:
		renderBlockDetails(w, st)
	case router.KindAccount:
		renderAccount(w, route, st)
	default:
		fmt.Fprintln(w, "nothing to display")
	}

	renderErrors(w, st)
}

func renderOverview(w io.Writer, st explorer.State) {
	fmt.Fprintf(w, "Blocks (%d total)\n", st.BlockCount)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Proposer", "Txs", "Timestamp", "Hash"})
	for _, b := range st.Blocks {
		proposer := b.Proposer.Alias
		if proposer == "" {
			proposer = b.Proposer.Address
		}
		table.Append([]string{
			strconv.FormatInt(b.Level, 10),
			proposer,
			strconv.FormatInt(b.Transactions, 10),
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Hash,
		})
	}
	table.Render()
}

func renderBlockDetails(w io.Writer, st explorer.State) {
	if st.Block == nil {
		fmt.Fprintln(w, "block not loaded")
		return
	}

	fmt.Fprintf(w, "Block %d (%s)\n", st.Block.Level, st.Block.Hash)
	fmt.Fprintf(w, "Transactions (%d total)\n", st.TransactionCount)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sender", "Target", "Amount", "Status"})
	for _, tx := range st.Transactions {
		table.Append([]string{
			orAddress(tx.Sender.Alias, tx.Sender.Address),
			orAddress(tx.Target.Alias, tx.Target.Address),
			FormatMutez(tx.Amount),
			string(tx.Status),
		})
	}
	table.Render()
}

func renderAccount(w io.Writer, route router.Route, st explorer.State) {
	switch {
	case st.Contract != nil:
		fmt.Fprintf(w, "Contract %s (kind %s, balance %s)\n",
			st.Contract.Address, st.Contract.Kind, FormatMutez(st.Contract.Balance))
	case st.Account != nil:
		fmt.Fprintf(w, "Account %s (balance %s)\n",
			st.Account.Address, FormatMutez(st.Account.Balance))
	default:
		fmt.Fprintln(w, "account not loaded")
		return
	}

	switch route.Tab {
	case router.TabTokens:
		renderTokenBalances(w, st)
	case router.TabEvents:
		renderEvents(w, st)
	case router.TabContract:
		renderContractDetails(w, st)
	default:
		renderOperations(w, st)
	}
}

func renderOperations(w io.Writer, st explorer.State) {
	fmt.Fprintf(w, "Operations (%d total)\n", st.OperationCount)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Id", "Type", "Sender", "Target", "Amount", "Status"})
	for _, op := range st.Operations {
		table.Append([]string{
			strconv.FormatInt(op.ID, 10),
			op.Type,
			orAddress(op.Sender.Alias, op.Sender.Address),
			orAddress(op.Target.Alias, op.Target.Address),
			FormatMutez(op.Amount),
			string(op.Status),
		})
	}
	table.Render()
}

func renderTokenBalances(w io.Writer, st explorer.State) {
	fmt.Fprintf(w, "Token balances (%d total)\n", st.TokenBalanceCount)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Token", "Symbol", "Balance", "Standard"})
	for _, tb := range st.TokenBalances {
		table.Append([]string{
			tb.Token.Metadata.Name,
			tb.Token.Metadata.Symbol,
			FormatTokenBalance(tb.Balance, tb.Token.Metadata.Decimals),
			tb.Token.Standard,
		})
	}
	table.Render()
}

func renderEvents(w io.Writer, st explorer.State) {
	fmt.Fprintf(w, "Events (%d total)\n", st.EventCount)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Id", "Level", "Tag", "Payload"})
	for _, ev := range st.Events {
		table.Append([]string{
			strconv.FormatInt(ev.ID, 10),
			strconv.FormatInt(ev.Level, 10),
			ev.Tag,
			string(ev.Payload),
		})
	}
	table.Render()
}

func renderContractDetails(w io.Writer, st explorer.State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Entrypoint", "Unused"})
	for _, ep := range st.Entrypoints {
		table.Append([]string{ep.Name, strconv.FormatBool(ep.Unused)})
	}
	table.Render()

	if len(st.Views) > 0 {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"View"})
		for _, v := range st.Views {
			table.Append([]string{v.Name})
		}
		table.Render()
	}

	if len(st.Storage) > 0 {
		fmt.Fprintf(w, "Storage: %s\n", st.Storage)
	}
}

func renderErrors(w io.Writer, st explorer.State) {
	for _, e := range st.Errors {
		fmt.Fprintf(w, "error: %s: %s\n", e.Source, e.Message)
	}
}

func orAddress(alias, address string) string {
	if alias != "" {
		return alias
	}
	return address
}
