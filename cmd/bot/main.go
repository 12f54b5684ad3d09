package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/krugerlabs/kruger-trivia/internal/bot"
	"github.com/krugerlabs/kruger-trivia/internal/config"
)

func main() {
	_ = godotenv.Load()
	config.Init()
	log := config.Logger()

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.BotToken == "" {
		fmt.Print("Enter your Telegram bot token: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		cfg.BotToken = strings.TrimSpace(line)
	}
	if cfg.BotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set and no token was provided")
	}

	client := bot.NewQuestionClient(cfg.BackendURL, bot.DefaultBackendTimeout)
	sessions := bot.NewSessionStore()
	controller := bot.NewController(client, sessions, rand.New(rand.NewSource(time.Now().UnixNano())))

	b, err := bot.New(cfg, controller)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}

	log.Info("Kruger Bot is running. Press Ctrl+C to stop.")
	b.Start()
}
