package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospledger-cli",
		Short: "HospLedger CLI tool",
		Long:  `A command line interface for interacting with the HospLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the HospLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(entryCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Chart of accounts operations",
	}

	var code, name, accountType string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts", map[string]string{
				"code": code,
				"name": name,
				"type": accountType,
			})
		},
	}
	createCmd.Flags().StringVar(&code, "code", "", "Account code")
	createCmd.Flags().StringVar(&name, "name", "", "Account name")
	createCmd.Flags().StringVar(&accountType, "type", "", "Account type (asset, liability, equity, revenue, expense)")
	createCmd.MarkFlagRequired("code")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("type")

	var activeOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/accounts"
			if activeOnly {
				path += "?active=true"
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	listCmd.Flags().BoolVar(&activeOnly, "active", false, "List active accounts only")

	var asOf string
	balanceCmd := &cobra.Command{
		Use:   "balance [code]",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/accounts/" + args[0] + "/balance"
			if asOf != "" {
				path += "?as_of=" + asOf
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	balanceCmd.Flags().StringVar(&asOf, "as-of", "", "Balance date (YYYY-MM-DD, default today)")

	cmd.AddCommand(createCmd, listCmd, balanceCmd)
	return cmd
}

func entryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry operations",
	}

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a journal entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/journal-entries/"+args[0], nil)
		},
	}

	postCmd := &cobra.Command{
		Use:   "post [id]",
		Short: "Post a draft entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/journal-entries/"+args[0]+"/post", nil)
		},
	}

	var reversedBy string
	reverseCmd := &cobra.Command{
		Use:   "reverse [id]",
		Short: "Reverse a posted entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/journal-entries/"+args[0]+"/reverse", map[string]string{
				"reversed_by": reversedBy,
			})
		},
	}
	reverseCmd.Flags().StringVar(&reversedBy, "by", "", "User reversing the entry")

	cmd.AddCommand(getCmd, postCmd, reverseCmd)
	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting operations",
	}

	var asOf string
	trialBalanceCmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/reports/trial-balance"
			if asOf != "" {
				path += "?as_of=" + asOf
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	trialBalanceCmd.Flags().StringVar(&asOf, "as-of", "", "Report date (YYYY-MM-DD, default today)")

	var start, end string
	incomeStatementCmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Show the income statement for a period",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/reports/income-statement?start="+start+"&end="+end, nil)
		},
	}
	incomeStatementCmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	incomeStatementCmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	incomeStatementCmd.MarkFlagRequired("start")
	incomeStatementCmd.MarkFlagRequired("end")

	var sheetAsOf string
	balanceSheetCmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Show the balance sheet",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/reports/balance-sheet"
			if sheetAsOf != "" {
				path += "?as_of=" + sheetAsOf
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	balanceSheetCmd.Flags().StringVar(&sheetAsOf, "as-of", "", "Report date (YYYY-MM-DD, default today)")

	cmd.AddCommand(trialBalanceCmd, incomeStatementCmd, balanceSheetCmd)
	return cmd
}

func doRequest(method, path string, payload any) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
