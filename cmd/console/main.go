package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func main() {
	client := &apiClient{
		baseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		playerID: getEnv("PLAYER_ID", uuid.NewString()),
		client:   &http.Client{Timeout: 30 * time.Second},
	}

	if !client.testConnection() {
		fmt.Fprintf(os.Stderr, "Could not connect to API at %s. Please ensure the API is running.\n", client.baseURL)
		os.Exit(1)
	}

	out, err := client.onboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newConsoleUI(client, out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
