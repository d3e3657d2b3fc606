package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/mbkold/scoutline/internal/analytics"
)

var (
	teamFlag   string
	gameFlag   string
	countFlag  int
	dryRunFlag bool
)

func init() {
	generateCmd.Flags().StringVar(&teamFlag, "team", "", "Team id to scout")
	generateCmd.Flags().StringVar(&gameFlag, "game", "valorant", "Game title: lol or valorant")
	generateCmd.Flags().IntVar(&countFlag, "count", 10, "Number of recent matches to analyze")
	generateCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Build the report without persisting or notifying")
	generateCmd.MarkFlagRequired("team")

	historyCmd.Flags().StringVar(&teamFlag, "team", "", "Filter history by team id")

	threatsCmd.Flags().StringVar(&gameFlag, "game", "valorant", "Game title: lol or valorant")
	threatsCmd.Flags().IntVar(&countFlag, "count", 10, "Number of recent matches to analyze")

	mapsCmd.Flags().IntVar(&countFlag, "count", 10, "Number of recent matches to analyze")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(threatsCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a scouting report for a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/reports/generate"
		if dryRunFlag {
			endpoint += "?dry_run=true"
		}
		body := map[string]any{
			"team_id":     teamFlag,
			"game":        gameFlag,
			"match_count": countFlag,
		}
		return performPostRequest(endpoint, body)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Fetch a stored scouting report by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/reports/" + args[0])
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored scouting reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/reports"
		if teamFlag != "" {
			endpoint += "?team_id=" + teamFlag
		}
		return performGetRequest(endpoint)
	},
}

var threatsCmd = &cobra.Command{
	Use:   "threats <teamID>",
	Short: "Show the threat ranking for a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/threats/%s?game=%s&match_count=%d", args[0], gameFlag, countFlag)
		payload, err := fetch(endpoint)
		if err != nil {
			return err
		}

		var threats []analytics.ThreatEntry
		if err := json.Unmarshal(payload, &threats); err != nil {
			return fmt.Errorf("failed to decode threats: %w", err)
		}

		table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		}))
		table.Header("Rank", "Player", "Threat", "Rationale")
		for _, th := range threats {
			table.Append(
				fmt.Sprintf("%d", th.Rank),
				th.Name,
				fmt.Sprintf("%.3f", th.ThreatScore),
				strings.Join(th.RationaleTags, ", "),
			)
		}
		return table.Render()
	},
}

var mapsCmd = &cobra.Command{
	Use:   "maps <teamID>",
	Short: "Show per-map side win rates for a VALORANT team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/maps/%s?game=valorant&match_count=%d", args[0], countFlag)
		payload, err := fetch(endpoint)
		if err != nil {
			return err
		}

		var stats []analytics.MapStat
		if err := json.Unmarshal(payload, &stats); err != nil {
			return fmt.Errorf("failed to decode map stats: %w", err)
		}

		table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		}))
		table.Header("Map", "Matches", "Attack WR", "Defense WR")
		for _, ms := range stats {
			table.Append(ms.MapName, fmt.Sprintf("%d", ms.SampleSize), formatRate(ms.AttackWinRate), formatRate(ms.DefenseWinRate))
		}
		return table.Render()
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func formatRate(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", *r*100)
}

func fetch(endpoint string) ([]byte, error) {
	url := host + endpoint
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
