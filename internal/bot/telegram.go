package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"web3-scout/internal/research"

	tele "gopkg.in/telebot.v3"
)

func StartTelegramBot(researchService *research.Service) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /price BTC")
		}
		price := researchService.PriceData(context.Background(), args[0])
		msg := fmt.Sprintf(
			"%s\nPrice: $%.2f\n24h Change: %.2f%%\n24h Volume: $%.0f",
			price.Symbol, price.Price, price.Change24h, price.Volume24h,
		)
		return c.Send(msg)
	})

	b.Handle("/report", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /report ethereum")
		}
		report := researchService.GenerateResearchReport(context.Background(), strings.Join(args, " "))
		msg := fmt.Sprintf(
			"%s Research Report\n\n%s\n\n%s\n\n%s",
			report.ProjectName, report.Overview, report.MarketAnalysis, report.Outlook,
		)
		return c.Send(msg)
	})

	b.Handle("/sentiment", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /sentiment bitcoin")
		}
		sentiment := researchService.SocialSentiment(context.Background(), strings.Join(args, " "))
		msg := fmt.Sprintf(
			"%s Sentiment\nScore: %.2f (%s)\nTweet Volume: %d",
			sentiment.ProjectName, sentiment.SentimentScore, sentiment.OverallSentiment, sentiment.TweetVolume,
		)
		return c.Send(msg)
	})

	log.Println("Telegram bot started")
	go b.Start()
}
