// cmd/tools/coach-cli/main.go
//
// Exercises the coachclient facade against a running proxy:
//
//	coach-cli insights -endpoint http://localhost:8080/api/coach/gemini -sales data.json
//	coach-cli chat -message "How is the Heineken brand doing?" -sales data.json
//	coach-cli prep -account "The Golden Lion" -objective "Renew contract" -sales data.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"salescoach-api/pkg/coach"
	"salescoach-api/pkg/coachclient"
)

func main() {
	insightsCmd := flag.NewFlagSet("insights", flag.ExitOnError)
	chatCmd := flag.NewFlagSet("chat", flag.ExitOnError)
	prepCmd := flag.NewFlagSet("prep", flag.ExitOnError)

	insightsEndpoint := insightsCmd.String("endpoint", "http://localhost:8080/api/coach/gemini", "Proxy endpoint URL")
	insightsSales := insightsCmd.String("sales", "", "Path to a JSON file of sales records")

	chatEndpoint := chatCmd.String("endpoint", "http://localhost:8080/api/coach/gemini", "Proxy endpoint URL")
	chatSales := chatCmd.String("sales", "", "Path to a JSON file of sales records")
	chatMessage := chatCmd.String("message", "", "User message to send")

	prepEndpoint := prepCmd.String("endpoint", "http://localhost:8080/api/coach/gemini", "Proxy endpoint URL")
	prepSales := prepCmd.String("sales", "", "Path to a JSON file of sales records")
	prepAccount := prepCmd.String("account", "", "Account name of the meeting")
	prepObjective := prepCmd.String("objective", "", "Meeting objective")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "insights":
		insightsCmd.Parse(os.Args[2:])
		client := coachclient.New(*insightsEndpoint)
		insights := client.GenerateCoachInsights(ctx, loadSales(*insightsSales))
		printJSON(insights)

	case "chat":
		chatCmd.Parse(os.Args[2:])
		if *chatMessage == "" {
			fmt.Println("Error: -message is required for chat.")
			chatCmd.Usage()
			os.Exit(1)
		}
		client := coachclient.New(*chatEndpoint)
		messages := []coach.ChatMessage{
			{ID: "1", Role: coach.RoleUser, Text: *chatMessage},
		}
		stream := client.ContinueChat(ctx, messages, loadSales(*chatSales))
		for {
			chunk, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "chat failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(chunk.Text)
		}

	case "prep":
		prepCmd.Parse(os.Args[2:])
		if *prepAccount == "" {
			fmt.Println("Error: -account is required for prep.")
			prepCmd.Usage()
			os.Exit(1)
		}
		client := coachclient.New(*prepEndpoint)
		meeting := coach.Meeting{
			AccountName: *prepAccount,
			Objective:   *prepObjective,
		}
		notes, err := client.GenerateMeetingPrep(ctx, meeting, loadSales(*prepSales))
		if err != nil {
			fmt.Fprintf(os.Stderr, "meeting prep failed: %v\n", err)
			os.Exit(1)
		}
		printJSON(notes)

	default:
		help()
		os.Exit(1)
	}
}

func loadSales(path string) []coach.SalesRecord {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read sales file: %v\n", err)
		os.Exit(1)
	}

	var records []coach.SalesRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "parse sales file: %v\n", err)
		os.Exit(1)
	}
	return records
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func help() {
	fmt.Println("Usage: coach-cli <insights|chat|prep> [flags]")
	fmt.Println("Run 'coach-cli <command> -h' for command flags.")
}
