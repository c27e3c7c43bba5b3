package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"hotel-paraiso-be/internal/config"
	"hotel-paraiso-be/internal/repository/memory"
	"hotel-paraiso-be/pkg/corpus"
	"hotel-paraiso-be/pkg/dialog"
	"hotel-paraiso-be/pkg/embedding"
)

// Interactive console client for exercising the conversation flow without
// the HTTP server or the database. Type "salir" (or Ctrl-D) to quit.
func main() {
	cfg := config.Load()

	store := corpus.NewStore(cfg.Chat.CorpusFilePath)
	entries, err := store.Load()
	if err != nil {
		log.Fatalf("Unable to load corpus: %v", err)
	}

	var provider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
	}

	holder := dialog.NewHolder()
	color.Yellow("Indexing %d corpus entries...", len(entries))
	index, err := dialog.BuildIndex(context.Background(), entries, provider)
	if err != nil {
		color.Red("Index build failed (%v), running degraded", err)
		holder.SetDegraded(true)
	} else {
		holder.Swap(index)
	}

	sessions := memory.NewSessionRepository(time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute)
	matcher := dialog.NewMatcher(holder, provider)
	router := dialog.NewRouter(sessions, matcher, holder, cfg.Chat.MatchThreshold)

	color.Cyan("Hotel Paraíso Azul — consola de pruebas")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		reply := router.Handle(context.Background(), "console", message)
		color.Green(reply.Text)
		if reply.Form != "" {
			color.Magenta("[formulario: %s]", reply.Form)
		}
		color.White("(fuente: %s)", reply.Source)
	}
}
