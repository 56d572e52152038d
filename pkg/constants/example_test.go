package constants_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/agentstation/starlens/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	// Create directory with standard permissions
	dir := filepath.Join(os.TempDir(), "starlens-example")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// Create file with standard permissions
	file := filepath.Join(dir, "stars.json")
	data := []byte("[]")
	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_timeouts demonstrates timeout constants
func Example_timeouts() {
	// HTTP client with default timeout
	client := &http.Client{
		Timeout: constants.DefaultHTTPTimeout,
	}
	fmt.Printf("HTTP timeout: %v\n", client.Timeout)

	// Context with operation timeout
	ctx, cancel := context.WithTimeout(
		context.Background(),
		constants.DefaultTimeout,
	)
	defer cancel()

	// Simulated operation
	select {
	case <-time.After(100 * time.Millisecond):
		fmt.Println("Operation completed")
	case <-ctx.Done():
		fmt.Println("Operation timed out")
	}

	// Output:
	// HTTP timeout: 30s
	// Operation completed
}

// Example_fetchPaging shows GitHub paging constants
func Example_fetchPaging() {
	fmt.Printf("GitHub API: %s\n", constants.DefaultGitHubAPIURL)
	fmt.Printf("Page size: %d\n", constants.DefaultPageSize)
	fmt.Printf("Page cap: %d\n", constants.MaxPages)

	// Output:
	// GitHub API: https://api.github.com
	// Page size: 100
	// Page cap: 400
}

// Example_chartDimensions shows the rendered artifact dimensions
func Example_chartDimensions() {
	fmt.Printf("Charts: %dx%d\n", constants.ChartWidth, constants.ChartHeight)
	fmt.Printf("Clouds: %dx%d\n", constants.CloudSize, constants.CloudSize)

	// Output:
	// Charts: 1280x720
	// Clouds: 1024x1024
}

// Example_bucketKeys demonstrates growth bucket key layouts
func Example_bucketKeys() {
	starred := time.Date(2024, time.March, 9, 18, 4, 0, 0, time.UTC)

	fmt.Printf("%s bucket: %s\n", constants.GrowthBucketMonth, starred.Format(constants.TimeFormatMonth))
	fmt.Printf("%s bucket: %s\n", constants.GrowthBucketDay, starred.Format(constants.TimeFormatDate))

	// Output:
	// month bucket: 2024-03
	// day bucket: 2024-03-09
}

// Example_completionLimits demonstrates highlight generation limits
func Example_completionLimits() {
	// Bounded fan-out for model completions
	jobs := make(chan int, constants.DefaultHighlightCount)
	for w := 0; w < constants.MaxConcurrentCompletions; w++ {
		go func() {
			for range jobs {
			}
		}()
	}
	close(jobs)

	fmt.Printf("Model: %s\n", constants.DefaultOpenAIModel)
	fmt.Printf("Workers: %d\n", constants.MaxConcurrentCompletions)
	fmt.Printf("Highlights: %d\n", constants.DefaultHighlightCount)

	// Output:
	// Model: gpt-4o-mini
	// Workers: 4
	// Highlights: 5
}
