package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/makaolabs/makao/internal/risk"
	"github.com/makaolabs/makao/pkg/types"
)

const defaultAddr = "http://localhost:8080"

func main() {
	_ = godotenv.Load()
	exitFn(run(os.Args, os.Stdout, os.Stderr))
}

var exitFn = os.Exit

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) < 2 {
		usage(stderr)
		return 2
	}

	switch args[1] {
	case "advise":
		return handleAdvise(args[2:], stdout, stderr)
	case "rules":
		return handleRules(args[2:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func handleAdvise(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("advise", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", envOrDefault("MAKAO_ADDR", defaultAddr), "gateway address")
	jsonOut := fs.Bool("json", false, "print raw JSON response")
	token := fs.String("token", envOrDefault("MAKAO_TOKEN", os.Getenv("MAKAO_DEV_TOKEN")), "bearer token")
	if err := fs.Parse(args); err != nil {
		fs.Usage()
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "advise requires <request.json> (or - for stdin)")
		fs.Usage()
		return 2
	}

	payload, err := readRequest(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	respBody, status, err := httpPost(http.DefaultClient, *addr+"/v1/advice", *token, payload)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	if status != http.StatusOK {
		fmt.Fprintf(stderr, "advise failed (%d): %s\n", status, bytes.TrimSpace(respBody))
		return 1
	}

	if *jsonOut {
		_, _ = stdout.Write(respBody)
		return 0
	}

	var resp types.AdvisoryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		fmt.Fprintln(stderr, "invalid response:", err)
		return 1
	}

	fmt.Fprintf(stdout, "status=%s advice_id=%s\n", resp.Status, resp.AdviceID)
	if resp.Assessment != nil {
		fmt.Fprintf(stdout, "category=%s total_severity=%d\n", resp.Assessment.Category, resp.Assessment.TotalSeverity)
		for _, ind := range resp.Assessment.Indicators {
			fmt.Fprintf(stdout, "  %+d %s\n", ind.Severity, ind.Tag)
		}
	}
	if resp.Recommendations != nil {
		for _, n := range resp.Recommendations.Neighborhoods {
			fmt.Fprintf(stdout, "  %s rent=%d commute=%dmin category=%s\n",
				n.Name, n.TypicalRentKES, n.CommuteMinutes, n.Assessment.Category)
		}
	}
	fmt.Fprintln(stdout, resp.Message)
	fmt.Fprintln(stdout, resp.Disclaimer)
	return 0
}

func handleRules(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		fs.Usage()
		return 2
	}

	rulebook := risk.DefaultRulebook()
	if fs.NArg() == 1 {
		loaded, err := risk.LoadRulebook(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		rulebook = loaded
	} else if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "rules takes at most one <rulebook.yaml>")
		fs.Usage()
		return 2
	}

	out, err := yaml.Marshal(rulebook)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	_, _ = stdout.Write(out)
	return 0
}

func readRequest(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	// #nosec G304 -- path is an operator-provided request file.
	return os.ReadFile(path)
}

func httpPost(client *http.Client, url string, token string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func envOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Makao CLI

Usage:
  makao advise <request.json> [--addr URL] [--json] [--token TOKEN]
  makao rules [rulebook.yaml]
`)
}
