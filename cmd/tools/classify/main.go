// Command classify prints the category and reply for utterances given as
// arguments, or one per line on stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/campus-assistant/backend/internal/config"
	"github.com/zhouzirui/campus-assistant/backend/internal/model/quickaction"
	"github.com/zhouzirui/campus-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/campus-assistant/backend/internal/service/chat"
)

func main() {
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] failed to load .env: %v", err)
	}

	showReply := flag.Bool("reply", false, "print the full reply text")
	actionID := flag.String("action", "", "classify a quick action's canned query instead")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	actions := quickaction.NewMemoryStore(quickaction.Seed())
	svc, err := assistant.NewService(ctx, chat.NewService(), actions, cfg.Assistant)
	if err != nil {
		log.Fatalf("failed to initialize assistant: %v", err)
	}

	var utterances []string
	switch {
	case *actionID != "":
		action, err := svc.QuickAction(*actionID)
		if err != nil {
			log.Fatalf("%s: %v", *actionID, err)
		}
		utterances = []string{action.Query}
	case flag.NArg() > 0:
		utterances = []string{strings.Join(flag.Args(), " ")}
	default:
		utterances, err = readLines(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
	}

	for _, utterance := range utterances {
		if strings.TrimSpace(utterance) == "" {
			continue
		}
		reply, err := svc.Reply(ctx, utterance)
		if err != nil {
			log.Fatalf("classify %q: %v", utterance, err)
		}
		fmt.Printf("%-10s %s\n", reply.Category, utterance)
		if *showReply {
			fmt.Println(reply.Message.Content)
			fmt.Println()
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
