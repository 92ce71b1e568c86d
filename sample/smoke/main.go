package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Smoke test against a running API: pushes one lead through the whole
// pipeline and prints the trace plus the report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found, using system environment")
	}

	baseURL := os.Getenv("DEALFLOW_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	body, _ := json.Marshal(map[string]string{
		"name":   "Jane Doe",
		"email":  "jane@example.com",
		"source": "web_form",
	})

	fmt.Println("🔄 Processing lead through the pipeline...")

	resp, err := http.Post(baseURL+"/process", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("unexpected status: %s", resp.Status)
	}

	var out struct {
		ProcessTrace   string `json:"process_trace"`
		ReportDocument string `json:"report_document"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("failed to decode response: %v", err)
	}

	fmt.Println(out.ProcessTrace)
	fmt.Println(out.ReportDocument)
}
