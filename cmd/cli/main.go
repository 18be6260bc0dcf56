package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tickstock-cli",
		Short: "TickStock CLI tool",
		Long:  `A command line interface for interacting with the TickStock API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the TickStock API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "Ticket range operations",
	}
	rangeCmd.AddCommand(resolveRangeCmd())
	rootCmd.AddCommand(rangeCmd)

	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Stock operations",
	}
	stockCmd.AddCommand(checkStockCmd())
	stockCmd.AddCommand(stockSummaryCmd())
	rootCmd.AddCommand(stockCmd)

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Category operations",
	}
	categoriesCmd.AddCommand(listCategoriesCmd())
	rootCmd.AddCommand(categoriesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func resolveRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <start> <end>",
		Short: "Resolve a start/end pair, completing a short end number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				StartValue    int64  `json:"start_value"`
				EndValue      int64  `json:"end_value"`
				NormalizedEnd string `json:"normalized_end"`
				TicketCount   int64  `json:"ticket_count"`
			}

			err := postJSON("/api/v1/ranges/resolve", map[string]string{
				"start_number": args[0],
				"end_number":   args[1],
			}, &result)
			if err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}
}

func checkStockCmd() *cobra.Command {
	var categoryID, start, end, ticketCode string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a range is available for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Available bool `json:"available"`
				Multiple  bool `json:"multiple"`
				Matches   []struct {
					EntryID    string `json:"entry_id"`
					TicketCode string `json:"ticket_code"`
				} `json:"matches"`
				AutoCode string `json:"auto_code"`
			}

			err := postJSON("/api/v1/stock/check", map[string]string{
				"category_id":  categoryID,
				"start_number": start,
				"end_number":   end,
				"ticket_code":  ticketCode,
			}, &result)
			if err != nil {
				return err
			}

			switch {
			case !result.Available:
				fmt.Println("UNAVAILABLE: no stock covers this range")
			case result.Multiple:
				fmt.Println("AMBIGUOUS: pick a ticket code and re-check")
				for _, m := range result.Matches {
					fmt.Printf("  %s (entry %s)\n", m.TicketCode, m.EntryID)
				}
			default:
				fmt.Printf("AVAILABLE: ticket code %s\n", result.AutoCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Category ID")
	cmd.Flags().StringVar(&start, "start", "", "Start ticket number")
	cmd.Flags().StringVar(&end, "end", "", "End ticket number (may be short)")
	cmd.Flags().StringVar(&ticketCode, "code", "", "Ticket code to disambiguate with")

	return cmd
}

func stockSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Per-category on-hand stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Categories []struct {
					CategoryID   string `json:"category_id"`
					CategoryName string `json:"category_name"`
					Quantity     int64  `json:"quantity"`
					Amount       string `json:"amount"`
				} `json:"categories"`
			}

			if err := getJSON("/api/v1/stock/summary", &result); err != nil {
				return err
			}

			fmt.Printf("%-10s %12s %14s\n", "CATEGORY", "QUANTITY", "AMOUNT")
			for _, c := range result.Categories {
				fmt.Printf("%-10s %12d %14s\n", truncate(c.CategoryName, 10), c.Quantity, c.Amount)
			}
			return nil
		},
	}
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ticket categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Categories []struct {
					ID           string `json:"id"`
					Name         string `json:"name"`
					Denomination int64  `json:"denomination"`
					PurchaseRate string `json:"purchase_rate"`
					SaleRate     string `json:"sale_rate"`
				} `json:"categories"`
			}

			if err := getJSON("/api/v1/categories/", &result); err != nil {
				return err
			}

			fmt.Printf("%-28s %-8s %6s %10s %10s\n", "ID", "NAME", "DENOM", "BUY", "SELL")
			for _, c := range result.Categories {
				fmt.Printf("%-28s %-8s %6d %10s %10s\n",
					truncate(c.ID, 28), c.Name, c.Denomination, c.PurchaseRate, c.SaleRate)
			}
			return nil
		},
	}
}

func getJSON(path string, out any) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func postJSON(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Message)
			}
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
