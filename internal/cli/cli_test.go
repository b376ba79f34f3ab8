package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/vburojevic/logpar/internal/config"
	"github.com/vburojevic/logpar/internal/engine"
)

// testGlobals creates a Globals struct with captured stdout/stderr
func testGlobals(format string) (*Globals, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Globals{
		Format:  format,
		Quiet:   false,
		Verbose: false,
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  config.Default(),
		Logger:  zap.NewNop(),
		Clock:   clock.NewMock(),
	}, stdout, stderr
}

func defaultEngineFlags() EngineFlags {
	return EngineFlags{Workers: 4, Strategy: "contiguous", Merge: "locked"}
}

func newAnalyzeCmd(files ...string) *AnalyzeCmd {
	return &AnalyzeCmd{
		Files:       files,
		Mode:        "parallel",
		Top:         5,
		EngineFlags: defaultEngineFlags(),
	}
}

const sampleLog = `2024-01-01 10:00:00 ERROR 192.168.0.1 Database connection failed
2024-01-01 10:00:01 INFO 192.168.0.2 Service started

2024-01-01 10:00:02 ERROR 192.168.0.1 Database connection failed
2024-01-01 10:00:03 WARNING 192.168.0.3 Disk usage high
2024-01-01 10:00:04 DEBUG 192.168.0.2 Debugging trace point
2024-01-01 10:00:05 ERROR 192.168.0.4 Timeout occurred
garbage
`

func writeLog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ndjsonLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for _, l := range lines {
		require.True(t, gjson.Valid(l), l)
	}
	return lines
}

// --- Analyze Command Tests ---

func TestAnalyzeCmd_Run(t *testing.T) {
	logFile := writeLog(t, "sample.log", sampleLog)

	t.Run("analyzes log file in NDJSON format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, newAnalyzeCmd(logFile).Run(globals))

		out := stdout.String()
		assert.Equal(t, "analysis", gjson.Get(out, "type").String())
		assert.Equal(t, "parallel", gjson.Get(out, "mode").String())
		assert.EqualValues(t, 4, gjson.Get(out, "workers").Int())
		assert.EqualValues(t, 7, gjson.Get(out, "lines").Int())
		assert.EqualValues(t, 3, gjson.Get(out, "keywords.error").Int())
		assert.EqualValues(t, 1, gjson.Get(out, "keywords.info").Int())
		assert.EqualValues(t, 1, gjson.Get(out, "keywords.warning").Int())
		assert.EqualValues(t, 1, gjson.Get(out, "keywords.debug").Int())
		assert.EqualValues(t, 4, gjson.Get(out, "uniqueIps").Int())
		assert.EqualValues(t, 2, gjson.Get(out, "topIps.0.count").Int())
		assert.Equal(t, "Database connection failed", gjson.Get(out, "topErrorMessages.0.key").String())
		assert.EqualValues(t, 2, gjson.Get(out, "topErrorMessages.0.count").Int())
		assert.Equal(t, logFile, gjson.Get(out, "files.0").String())
	})

	t.Run("serial and parallel agree", func(t *testing.T) {
		serialGlobals, serialOut, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Mode = "serial"
		require.NoError(t, cmd.Run(serialGlobals))
		assert.EqualValues(t, 1, gjson.Get(serialOut.String(), "workers").Int())

		for _, strategy := range []string{"contiguous", "striped"} {
			for _, merge := range []string{"locked", "collector"} {
				globals, stdout, _ := testGlobals("ndjson")
				cmd := newAnalyzeCmd(logFile)
				cmd.Workers = 3
				cmd.Strategy = strategy
				cmd.Merge = merge
				require.NoError(t, cmd.Run(globals))

				for _, path := range []string{"lines", "keywords", "uniqueIps", "uniqueErrorMessages"} {
					assert.Equal(t,
						gjson.Get(serialOut.String(), path).Raw,
						gjson.Get(stdout.String(), path).Raw,
						"%s/%s %s", strategy, merge, path)
				}
			}
		}
	})

	t.Run("analyzes log file in text format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		require.NoError(t, newAnalyzeCmd(logFile).Run(globals))

		output := stdout.String()
		assert.Contains(t, output, "Keyword Frequency")
		assert.Contains(t, output, "Top IPs")
		assert.Contains(t, output, "Top Error Messages")
		assert.Contains(t, output, "Database connection failed")
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("concatenates multiple files", func(t *testing.T) {
		second := writeLog(t, "second.log", "2024-01-01 11:00:00 ERROR 10.0.0.9 Disk full\n")
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, newAnalyzeCmd(logFile, second).Run(globals))

		out := stdout.String()
		assert.EqualValues(t, 8, gjson.Get(out, "lines").Int())
		assert.EqualValues(t, 4, gjson.Get(out, "keywords.error").Int())
		assert.EqualValues(t, 2, gjson.Get(out, "files.#").Int())
	})

	t.Run("top limits ranked sections", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Top = 1
		require.NoError(t, cmd.Run(globals))

		out := stdout.String()
		assert.EqualValues(t, 1, gjson.Get(out, "topIps.#").Int())
		assert.EqualValues(t, 1, gjson.Get(out, "topErrorMessages.#").Int())

		globals, stdout, _ = testGlobals("ndjson")
		cmd.Top = 0
		require.NoError(t, cmd.Run(globals))
		assert.EqualValues(t, 0, gjson.Get(stdout.String(), "topIps.#").Int())
		assert.EqualValues(t, 3, gjson.Get(stdout.String(), "keywords.error").Int())
	})

	t.Run("top zero hides ranked sections in text", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		cmd := newAnalyzeCmd(logFile)
		cmd.Top = 0
		require.NoError(t, cmd.Run(globals))

		output := stdout.String()
		assert.Contains(t, output, "Keyword Frequency")
		assert.NotContains(t, output, "Top IPs")
		assert.NotContains(t, output, "Top Error Messages")
	})

	t.Run("keyword filter keeps matching lines only", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Keyword = []string{"error"}
		cmd.SourceStats = true
		require.NoError(t, cmd.Run(globals))

		lines := ndjsonLines(t, stdout)
		require.Len(t, lines, 2)
		assert.Equal(t, "source_stats", gjson.Get(lines[0], "type").String())
		assert.EqualValues(t, 7, gjson.Get(lines[0], "read").Int())
		assert.EqualValues(t, 3, gjson.Get(lines[0], "kept").Int())
		assert.EqualValues(t, 4, gjson.Get(lines[0], "filtered").Int())
		assert.EqualValues(t, 3, gjson.Get(lines[1], "lines").Int())
		assert.EqualValues(t, 0, gjson.Get(lines[1], "keywords.info").Int())
	})

	t.Run("exclude and pattern", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Pattern = "192\\.168"
		cmd.Exclude = []string{"DEBUG"}
		require.NoError(t, cmd.Run(globals))
		assert.EqualValues(t, 5, gjson.Get(stdout.String(), "lines").Int())
		assert.EqualValues(t, 0, gjson.Get(stdout.String(), "keywords.debug").Int())
	})

	t.Run("config exclude applies when no flag is given", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		globals.Config.Source.Exclude = []string{"^garbage$"}
		require.NoError(t, newAnalyzeCmd(logFile).Run(globals))
		assert.EqualValues(t, 6, gjson.Get(stdout.String(), "lines").Int())
	})

	t.Run("json field extraction", func(t *testing.T) {
		ndjson := writeLog(t, "records.ndjson",
			`{"msg":"2024-01-01 10:00:00 ERROR 10.1.1.1 Timeout occurred"}`+"\n"+
				`{"other":1}`+"\n"+
				`{"msg":"2024-01-01 10:00:01 INFO 10.1.1.2 ok"}`+"\n")
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(ndjson)
		cmd.JSONField = "msg"
		require.NoError(t, cmd.Run(globals))

		out := stdout.String()
		assert.EqualValues(t, 2, gjson.Get(out, "lines").Int())
		assert.Equal(t, "Timeout occurred", gjson.Get(out, "topErrorMessages.0.key").String())
	})

	t.Run("empty file yields zero report with warning", func(t *testing.T) {
		empty := writeLog(t, "empty.log", "\n\n")
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, newAnalyzeCmd(empty).Run(globals))

		lines := ndjsonLines(t, stdout)
		require.Len(t, lines, 2)
		assert.Equal(t, "warning", gjson.Get(lines[0], "type").String())
		assert.Equal(t, "analysis", gjson.Get(lines[1], "type").String())
		assert.EqualValues(t, 0, gjson.Get(lines[1], "lines").Int())
		assert.EqualValues(t, 0, gjson.Get(lines[1], "topIps.#").Int())
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		err := newAnalyzeCmd("/nonexistent/file.log").Run(globals)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Equal(t, "FILE_NOT_FOUND", gjson.Get(stdout.String(), "code").String())
		assert.NotEmpty(t, gjson.Get(stdout.String(), "hint").String())

		var cliErr *CLIError
		require.ErrorAs(t, err, &cliErr)
		assert.Equal(t, "FILE_NOT_FOUND", cliErr.Code)
	})

	t.Run("text errors go to stderr", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("text")
		err := newAnalyzeCmd("/nonexistent/file.log").Run(globals)
		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Error [FILE_NOT_FOUND]")
	})

	t.Run("rejects zero workers before reading input", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd("/nonexistent/file.log")
		cmd.Workers = 0
		err := cmd.Run(globals)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidWorkers)
		assert.Equal(t, "INVALID_CONFIG", gjson.Get(stdout.String(), "code").String())
	})

	t.Run("rejects negative top", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Top = -1
		err := cmd.Run(globals)
		assert.ErrorIs(t, err, config.ErrInvalidTopN)
		assert.Equal(t, "INVALID_CONFIG", gjson.Get(stdout.String(), "code").String())
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Strategy = "random"
		require.Error(t, cmd.Run(globals))
		assert.Equal(t, "INVALID_CONFIG", gjson.Get(stdout.String(), "code").String())
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Pattern = "[["
		require.Error(t, cmd.Run(globals))
		assert.Equal(t, "INVALID_FILTER", gjson.Get(stdout.String(), "code").String())
		assert.Contains(t, gjson.Get(stdout.String(), "hint").String(), "regular expressions")
	})

	t.Run("rejects unknown keyword", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd(logFile)
		cmd.Keyword = []string{"FATAL"}
		require.Error(t, cmd.Run(globals))
		assert.Equal(t, "INVALID_FILTER", gjson.Get(stdout.String(), "code").String())
	})
}

// --- Bench Command Tests ---

func TestBenchCmd_Run(t *testing.T) {
	dir := t.TempDir()
	globals, _, _ := testGlobals("ndjson")
	require.NoError(t, (&GenerateCmd{Dir: dir, Preset: []string{"log_small.txt", "log_medium.txt"}, Seed: 7}).Run(globals))

	newBenchCmd := func() *BenchCmd {
		return &BenchCmd{Dir: dir, Runs: 2, EngineFlags: defaultEngineFlags()}
	}

	t.Run("benchmarks presets and skips missing ones", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, newBenchCmd().Run(globals))

		var benchmarks, warnings []string
		for _, l := range ndjsonLines(t, stdout) {
			switch gjson.Get(l, "type").String() {
			case "benchmark":
				benchmarks = append(benchmarks, l)
			case "warning":
				warnings = append(warnings, l)
			}
		}
		require.Len(t, benchmarks, 2)
		assert.Len(t, warnings, 3)

		assert.Equal(t, filepath.Join(dir, "log_small.txt"), gjson.Get(benchmarks[0], "file").String())
		assert.EqualValues(t, 100, gjson.Get(benchmarks[0], "lines").Int())
		assert.EqualValues(t, 1000, gjson.Get(benchmarks[1], "lines").Int())
		assert.EqualValues(t, 2, gjson.Get(benchmarks[0], "runs").Int())
		assert.True(t, gjson.Get(benchmarks[0], "consistent").Bool())
	})

	t.Run("csv output keeps warnings off stdout", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("ndjson")
		cmd := newBenchCmd()
		cmd.CSV = true
		cmd.Output = filepath.Join(t.TempDir(), "benchmark_results.csv")
		cmd.Merge = "collector"
		cmd.Strategy = "striped"
		require.NoError(t, cmd.Run(globals))

		records, err := csv.NewReader(strings.NewReader(stdout.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Log File", records[0][0])
		assert.Equal(t, "100", records[1][1])
		assert.Contains(t, stderr.String(), "log_large.txt")

		saved, err := os.ReadFile(cmd.Output)
		require.NoError(t, err)
		assert.Equal(t, stdout.String(), string(saved))
	})

	t.Run("explicit files", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		cmd := newBenchCmd()
		cmd.Files = []string{filepath.Join(dir, "log_small.txt")}
		cmd.NoWarmup = true
		require.NoError(t, cmd.Run(globals))
		assert.Contains(t, stdout.String(), "log_small.txt")
		assert.NotContains(t, stdout.String(), "log_medium.txt")
	})

	t.Run("no inputs is an error", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := newBenchCmd()
		cmd.Dir = t.TempDir()
		require.Error(t, cmd.Run(globals))

		lines := ndjsonLines(t, stdout)
		assert.Equal(t, "NO_FILES", gjson.Get(lines[len(lines)-1], "code").String())
	})

	t.Run("invalid workers", func(t *testing.T) {
		globals, _, _ := testGlobals("ndjson")
		cmd := newBenchCmd()
		cmd.Workers = -1
		assert.ErrorIs(t, cmd.Run(globals), config.ErrInvalidWorkers)
	})
}

// --- Generate Command Tests ---

func TestGenerateCmd_Run(t *testing.T) {
	t.Run("writes a custom sized file", func(t *testing.T) {
		dir := t.TempDir()
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, (&GenerateCmd{Dir: dir, Lines: 25, Name: "custom.log", Seed: 1}).Run(globals))

		data, err := os.ReadFile(filepath.Join(dir, "custom.log"))
		require.NoError(t, err)
		assert.Equal(t, 25, bytes.Count(data, []byte("\n")))

		out := stdout.String()
		assert.Equal(t, "info", gjson.Get(out, "type").String())
		assert.EqualValues(t, 25, gjson.Get(out, "lines").Int())
	})

	t.Run("quiet suppresses progress", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		globals.Quiet = true
		require.NoError(t, (&GenerateCmd{Dir: t.TempDir(), Lines: 1, Name: "one.log"}).Run(globals))
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects unknown preset", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		err := (&GenerateCmd{Dir: t.TempDir(), Preset: []string{"log_huge.txt"}}).Run(globals)
		require.Error(t, err)
		assert.Equal(t, "INVALID_ARGS", gjson.Get(stdout.String(), "code").String())
	})
}

// --- Config Command Tests ---

func TestConfigShowCmd_Run(t *testing.T) {
	t.Run("outputs config in text format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		cmd := &ConfigShowCmd{}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Current Configuration:")
		assert.Contains(t, output, "workers:  4")
		assert.Contains(t, output, "strategy: contiguous")
		assert.Contains(t, output, "Bench:")
	})

	t.Run("outputs config in NDJSON format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := &ConfigShowCmd{}

		err := cmd.Run(globals)
		require.NoError(t, err)

		var result map[string]interface{}
		err = json.Unmarshal(stdout.Bytes(), &result)
		require.NoError(t, err)

		assert.Equal(t, "config", result["type"])
		assert.EqualValues(t, 4, result["workers"])
		assert.EqualValues(t, 5, result["top"])
		assert.Contains(t, result, "bench")
		assert.Contains(t, result, "source")
	})
}

func TestConfigPathCmd_Run(t *testing.T) {
	t.Run("outputs path info in text format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		require.NoError(t, (&ConfigPathCmd{}).Run(globals))

		output := stdout.String()
		assert.True(t, strings.Contains(output, "Config file:") || strings.Contains(output, "No configuration file found"))
	})

	t.Run("outputs path info in NDJSON format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, (&ConfigPathCmd{}).Run(globals))
		assert.Equal(t, "config_path", gjson.Get(stdout.String(), "type").String())
		assert.True(t, gjson.Get(stdout.String(), "path").Exists())
	})
}

func TestConfigGenerateCmd_Run(t *testing.T) {
	globals, stdout, _ := testGlobals("text")
	require.NoError(t, (&ConfigGenerateCmd{}).Run(globals))

	// the sample must load and validate
	path := filepath.Join(t.TempDir(), "logpar.yaml")
	require.NoError(t, os.WriteFile(path, stdout.Bytes(), 0644))
	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	def := config.Default()
	assert.Equal(t, def.Workers, cfg.Workers)
	assert.Equal(t, def.Top, cfg.Top)
	assert.Equal(t, def.Strategy, cfg.Strategy)
	assert.Equal(t, def.Merge, cfg.Merge)
	assert.Equal(t, def.Bench, cfg.Bench)
	assert.Empty(t, cfg.Source.Exclude)
}

// --- Schema Command Tests ---

func TestSchemaCmd_Run(t *testing.T) {
	t.Run("outputs all schemas", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, (&SchemaCmd{}).Run(globals))

		out := stdout.String()
		for _, typ := range schemaTypes {
			assert.True(t, gjson.Get(out, "definitions."+typ).Exists(), typ)
		}
		assert.Equal(t, "analysis", gjson.Get(out, "definitions.analysis.properties.type.const").String())
	})

	t.Run("filters by type", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("ndjson")
		require.NoError(t, (&SchemaCmd{Type: []string{"Benchmark", "nope"}}).Run(globals))

		defs := gjson.Get(stdout.String(), "definitions").Map()
		assert.Len(t, defs, 1)
		assert.Contains(t, defs, "benchmark")
		assert.Contains(t, stderr.String(), "nope")
	})
}

// --- Version Command Tests ---

func TestVersionCmd_Run(t *testing.T) {
	t.Run("outputs version in text format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		require.NoError(t, (&VersionCmd{}).Run(globals))
		assert.Contains(t, stdout.String(), "logpar version")
	})

	t.Run("outputs version in NDJSON format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, (&VersionCmd{}).Run(globals))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.Equal(t, "metadata", result["type"])
		assert.Contains(t, result, "version")
		assert.Contains(t, result, "commit")
	})
}

// --- Parsing Tests ---

func TestParse_ConfigDefaultsAndFlagOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 8
	cfg.Top = 3
	cfg.Merge = "collector"

	var c CLI
	parser, err := kong.New(&c, KongVars(cfg))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"analyze", "a.log", "b.log"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.log", "b.log"}, c.Analyze.Files)
	assert.Equal(t, 8, c.Analyze.Workers)
	assert.Equal(t, 3, c.Analyze.Top)
	assert.Equal(t, "collector", c.Analyze.Merge)
	assert.Equal(t, "contiguous", c.Analyze.Strategy)
	assert.Equal(t, "parallel", c.Analyze.Mode)
	assert.Equal(t, "ndjson", c.Format)

	c = CLI{}
	parser, err = kong.New(&c, KongVars(cfg))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--format", "text", "analyze", "-w", "2", "--top", "0", "--strategy", "striped", "-x", "^#", "-k", "ERROR", "a.log"})
	require.NoError(t, err)
	assert.Equal(t, "text", c.Format)
	assert.Equal(t, 2, c.Analyze.Workers)
	assert.Equal(t, 0, c.Analyze.Top)
	assert.Equal(t, "striped", c.Analyze.Strategy)
	assert.Equal(t, []string{"^#"}, c.Analyze.Exclude)
	assert.Equal(t, []string{"ERROR"}, c.Analyze.Keyword)
}

func TestNewGlobalsWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Quiet = true

	g := NewGlobalsWithConfig(&CLI{Format: "text"}, cfg)
	assert.True(t, g.Quiet)
	assert.Equal(t, "text", g.Format)
	require.NotNil(t, g.Logger)
	assert.False(t, g.Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, g.Logger.Core().Enabled(zap.WarnLevel))

	g = NewGlobalsWithConfig(&CLI{Verbose: true}, config.Default())
	assert.True(t, g.Logger.Core().Enabled(zap.DebugLevel))
}

func TestEngineOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 6
	cfg.Strategy = "striped"
	opts := engineOptions(cfg)
	assert.Equal(t, engine.Options{Workers: 6, Strategy: engine.StrategyStriped, Merge: engine.MergeLocked}, opts)
	require.NoError(t, opts.Validate())
}

// --- Exit Code Tests ---

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitInconsistent, ExitCode(&CLIError{Code: "INCONSISTENT_RESULTS"}))

	t.Run("derived from command errors", func(t *testing.T) {
		globals, _, _ := testGlobals("ndjson")
		cmd := newAnalyzeCmd("/nonexistent/file.log")
		assert.Equal(t, ExitFailure, ExitCode(cmd.Run(globals)))

		cmd.Workers = 0
		assert.Equal(t, ExitUsage, ExitCode(cmd.Run(globals)))

		cmd = newAnalyzeCmd("/nonexistent/file.log")
		cmd.Pattern = "[["
		assert.Equal(t, ExitUsage, ExitCode(cmd.Run(globals)))

		err := (&GenerateCmd{Dir: t.TempDir(), Lines: -1}).Run(globals)
		assert.Equal(t, ExitUsage, ExitCode(err))
	})
}
