package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/perf/benchfmt"
)

const (
	resultsDir   = "benchmarks/results"
	profilesDir  = "benchmarks/profiles"
	baselineFile = "baseline.txt"
	currentFile  = "current.txt"
	benchTime    = "-benchtime=2s"
)

// hotPaths are the benchmarks worth watching between releases
var hotPaths = []struct {
	label, dir, pattern string
}{
	{"Service: passthrough reads", "./internal/crud", "BenchmarkPassthrough"},
	{"Handler: entity routes", "./internal/handler", "BenchmarkEntityHandlers"},
}

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run benchmarks (run, hot, save, baseline, compare, profile)"
}

func (c *BenchCommand) Run(args []string) error {
	subcmd := "run"
	if len(args) > 0 {
		subcmd = args[0]
	}

	switch subcmd {
	case "run":
		PrintHeader("Running all benchmarks...")
		return goTest(os.Stdout, "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
	case "hot":
		return c.runHot()
	case "save":
		_, err := c.runAndSave(time.Now().Format("20060102-150405") + ".txt")
		return err
	case "baseline":
		_, err := c.runAndSave(baselineFile)
		return err
	case "compare":
		return c.compare()
	case "profile":
		return c.profile()
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
}

func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")
	for _, hp := range hotPaths {
		fmt.Printf("  → %s\n", hp.label)
		if err := goTest(os.Stdout, "-run=^$", "-bench="+hp.pattern, "-benchmem", benchTime, hp.dir); err != nil {
			PrintWarning("%s failed: %v", hp.pattern, err)
		}
	}
	return nil
}

func (c *BenchCommand) runAndSave(name string) (string, error) {
	PrintHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(resultsDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := goTest(io.MultiWriter(os.Stdout, f), "-run=^$", "-bench=.", "-benchmem", benchTime, "./..."); err != nil {
		return "", fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s", path)
	return path, nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(resultsDir, baselineFile)
	if _, err := os.Stat(baseline); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("no baseline found, run 'devtool bench baseline' first")
	}

	current, err := c.runAndSave(currentFile)
	if err != nil {
		return err
	}

	if _, err := exec.LookPath("benchstat"); err == nil {
		PrintHeader("benchstat")
		cmd := exec.Command("benchstat", baseline, current)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	PrintWarning("benchstat not installed (go install golang.org/x/perf/cmd/benchstat), showing ns/op only")
	before, err := readNsPerOp(baseline)
	if err != nil {
		return err
	}
	after, err := readNsPerOp(current)
	if err != nil {
		return err
	}
	for name, now := range after {
		was, ok := before[name]
		if !ok || was == 0 {
			fmt.Printf("  %-50s %12.0f ns/op (new)\n", name, now)
			continue
		}
		fmt.Printf("  %-50s %12.0f ns/op %+7.1f%%\n", name, now, (now-was)/was*100)
	}
	return nil
}

// readNsPerOp returns the last ns/op value seen per benchmark name
func readNsPerOp(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]float64)
	r := benchfmt.NewReader(f, path)
	for r.Scan() {
		res, ok := r.Result().(*benchfmt.Result)
		if !ok {
			continue
		}
		for _, v := range res.Values {
			if v.Unit == "sec/op" || v.Unit == "ns/op" {
				ns := v.Value
				if v.Unit == "sec/op" {
					ns *= 1e9
				}
				out[string(res.Name)] = ns
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return out, nil
}

func (c *BenchCommand) profile() error {
	PrintHeader("Profiling hot paths...")
	if err := os.MkdirAll(profilesDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	err := goTest(os.Stdout, "-run=^$", "-bench=BenchmarkEntityHandlers", "-benchmem",
		"-cpuprofile="+filepath.Join(profilesDir, "cpu.prof"),
		"-memprofile="+filepath.Join(profilesDir, "mem.prof"),
		"./internal/handler")
	if err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}

	PrintSuccess("Profiles saved to %s/", profilesDir)
	fmt.Println("View with:")
	fmt.Println("  go tool pprof -http=:8080 " + filepath.Join(profilesDir, "cpu.prof"))
	return nil
}

func goTest(stdout io.Writer, args ...string) error {
	//nolint:gosec // G204: arguments are fixed above
	cmd := exec.Command("go", append([]string{"test"}, args...)...)
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
