package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Account is one login used to spread the load
type Account struct {
	Email    string
	Password string
	Token    string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AccountStats       map[string]int // Track requests per account
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// WalletScenario defines a wallet request scenario
type WalletScenario struct {
	Name   string // For stats tracking
	Path   string
	Amount string
	Method string
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountsStr := flag.String("u", "user1@example.com:password1", "Comma-separated email:password accounts to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	// Log in every account
	var accounts []*Account
	for _, pair := range strings.Split(*accountsStr, ",") {
		email, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || email == "" {
			continue
		}
		acc := &Account{Email: email, Password: password}
		if err := login(client, *baseURL, acc); err != nil {
			fmt.Fprintf(os.Stderr, "Login failed for %s: %v\n", email, err)
			continue
		}
		accounts = append(accounts, acc)
	}
	if len(accounts) == 0 {
		fmt.Fprintln(os.Stderr, "No account could log in")
		os.Exit(1)
	}

	// Define wallet scenarios
	scenarios := []WalletScenario{
		{"Deposit Small", "/api/wallet/deposits", "10.00", "card"},
		{"Deposit Medium", "/api/wallet/deposits", "20.00", "card"},
		{"Deposit Large", "/api/wallet/deposits", "30.00", "bank"},
		{"Withdraw Small", "/api/wallet/withdrawals", "15.00", "bank"},
		{"Withdraw Medium", "/api/wallet/withdrawals", "40.00", "bank"},
		{"Withdraw Large", "/api/wallet/withdrawals", "60.00", "bank"},
	}

	fmt.Printf("Load testing API across %d accounts\n", len(accounts))
	fmt.Printf("Wallet scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AccountStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, accounts, scenarios, jobs, results, stats)
		}()
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Collect results
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

func login(client *http.Client, baseURL string, acc *Account) error {
	body, _ := json.Marshal(map[string]string{"email": acc.Email, "password": acc.Password})
	resp, err := client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, gjson.GetBytes(raw, "message").String())
	}
	acc.Token = gjson.GetBytes(raw, "data.token").String()
	if acc.Token == "" {
		return fmt.Errorf("response carried no token")
	}
	return nil
}

func worker(client *http.Client, baseURL string, delayMs int, accounts []*Account,
	scenarios []WalletScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		acc := accounts[rand.Intn(len(accounts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.AccountStats[acc.Email]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		// Every request carries a unique reference so retries stay idempotent
		payload, err := json.Marshal(map[string]string{
			"amount":    scenario.Amount,
			"method":    scenario.Method,
			"reference": "load-" + uuid.NewString()[:18],
		})
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+scenario.Path, bytes.NewReader(payload))
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+acc.Token)

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP %d %s", resp.StatusCode, gjson.GetBytes(raw, "message").String())
			}
		}

		results <- result
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	attempted := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Successful TPS:      %.2f\n", tps)
	fmt.Printf("Attempted TPS:       %.2f\n", attempted)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for email, count := range stats.AccountStats {
		fmt.Printf("%-30s: %d requests (%.1f%%)\n", email, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	// Wallet busy and limit rejections are expected under contention
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
