package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/money"
	"github.com/blackwell-systems/bookshopctl/internal/query"
	"github.com/blackwell-systems/bookshopctl/internal/util"
)

func newTransactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx", "orders"},
		Short:   "View past transactions",
	}

	cmd.AddCommand(
		newTransactionsListCmd(),
		newTransactionsShowCmd(),
		newTransactionsStatsCmd(),
	)
	return cmd
}

func newTransactionsListCmd() *cobra.Command {
	var (
		idQuery  string
		sortKey  string
		sortDesc bool
		page     int
		allPages bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions",
		Example: `  bookshopctl transactions list
  bookshopctl transactions list --sort price --desc
  bookshopctl transactions list --id 4f2 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			txs, err := client.ListTransactions()
			if err != nil {
				return authErr(err)
			}

			filtered := query.FilterTransactions(txs, idQuery)
			sorted := query.SortTransactions(filtered, sortKey, sortDesc)

			if jsonOut {
				return printJSON(sorted)
			}

			if len(sorted) == 0 {
				fmt.Println("No transactions.")
				return nil
			}

			size := cfg.Defaults.EffectivePageSize()
			pages := query.PageCount(sorted, size)
			shown := sorted
			if !allPages {
				shown = query.Page(sorted, page, size)
				if len(shown) == 0 {
					return fmt.Errorf("page %d is out of range (1-%d)", page, pages)
				}
			}

			header("Transactions — %d total", len(sorted))
			for _, tx := range shown {
				printTransactionRow(tx)
			}
			if !allPages && pages > 1 {
				fmt.Printf("\nPage %d of %d — use --page to navigate, --all for everything\n", page, pages)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&idQuery, "id", "", "Filter by transaction ID substring")
	cmd.Flags().StringVar(&sortKey, "sort", query.SortNewest, "Sort key: newest, id, amount, price")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "Reverse the sort order")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&allPages, "all", false, "Show every page at once")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")

	return cmd
}

func printTransactionRow(tx api.Transaction) {
	status := tx.Status
	switch tx.Status {
	case "completed", "success":
		status = color.GreenString(tx.Status)
	case "failed", "canceled":
		status = color.RedString(tx.Status)
	}
	fmt.Printf("  %-12s %-20s %3d item(s) %12s  %s\n",
		util.ShortID(tx.ID, 12), tx.CreatedAt, tx.TotalAmount,
		color.GreenString(money.FormatPrice(tx.TotalPrice)), status)
}

func newTransactionsShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show one transaction in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			tx, err := client.GetTransaction(args[0])
			if err != nil {
				return authErr(err)
			}

			if jsonOut {
				return printJSON(tx)
			}

			header("Transaction %s", tx.ID)
			fmt.Printf("  Date:   %s\n", tx.CreatedAt)
			fmt.Printf("  Status: %s\n", tx.Status)
			fmt.Printf("  Items:  %d\n", tx.TotalAmount)
			fmt.Printf("  Total:  %s\n", color.GreenString(money.FormatPrice(tx.TotalPrice)))

			if len(tx.Items) > 0 {
				fmt.Println()
				for _, item := range tx.Items {
					fmt.Printf("    %-40s ×%-3d %12s\n",
						util.Truncate(item.BookTitle, 40), item.Quantity,
						money.FormatPrice(item.Price))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func newTransactionsStatsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show purchase statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			stats, err := client.TransactionStats()
			if err != nil {
				return authErr(err)
			}

			if jsonOut {
				return printJSON(stats)
			}

			header("Statistics")
			fmt.Printf("  Transactions: %d\n", stats.TotalTransactions)
			fmt.Printf("  Items sold:   %d\n", stats.TotalItemsSold)
			fmt.Printf("  Revenue:      %s\n", color.GreenString(money.FormatPrice(stats.TotalRevenue)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

// runHistory is the hub menu's transaction view: newest first, first page.
func runHistory() error {
	if err := requireLogin(); err != nil {
		return err
	}

	txs, err := client.ListTransactions()
	if err != nil {
		return authErr(err)
	}
	if len(txs) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}

	sorted := query.SortTransactions(txs, query.SortNewest, false)
	size := cfg.Defaults.EffectivePageSize()

	header("Recent Transactions")
	for _, tx := range query.Page(sorted, 1, size) {
		printTransactionRow(tx)
	}
	if pages := query.PageCount(sorted, size); pages > 1 {
		fmt.Printf("\n%d more page(s) — bookshopctl transactions list --page 2\n", pages-1)
	}
	return nil
}
