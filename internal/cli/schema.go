package cli

import (
	"encoding/json"
	"strings"

	"github.com/vburojevic/logpar/internal/output"
)

// SchemaCmd outputs JSON Schema for logpar output types
type SchemaCmd struct {
	Type []string `short:"t" help:"Output types to include (analysis,benchmark,error,info,warning,metadata,source_stats). Default: all"`
}

var schemaTypes = []string{"analysis", "benchmark", "error", "info", "warning", "metadata", "source_stats"}

// Run executes the schema command
func (c *SchemaCmd) Run(globals *Globals) error {
	schemas := map[string]interface{}{
		"analysis":     analysisSchema(),
		"benchmark":    benchmarkSchema(),
		"error":        errorSchema(),
		"info":         infoSchema(),
		"warning":      warningSchema(),
		"metadata":     metadataSchema(),
		"source_stats": sourceStatsSchema(),
	}

	typesToOutput := c.Type
	if len(typesToOutput) == 0 {
		typesToOutput = schemaTypes
	}

	defs := map[string]interface{}{}
	for _, t := range typesToOutput {
		t = strings.ToLower(strings.TrimSpace(t))
		schema, ok := schemas[t]
		if !ok {
			emitWarning(globals, nil, "unknown schema type: "+t)
			continue
		}
		defs[t] = schema
	}

	schemaOutput := map[string]interface{}{
		"$schema":       "http://json-schema.org/draft-07/schema#",
		"title":         "logpar Output Schemas",
		"description":   "JSON Schema definitions for all logpar NDJSON output types",
		"schemaVersion": output.SchemaVersion,
		"definitions":   defs,
	}

	encoder := json.NewEncoder(globals.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schemaOutput)
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": description}
}

func constProp(value string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "const": value}
}

// schemaVersionProperty returns the schemaVersion property definition
func schemaVersionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"const":       output.SchemaVersion,
		"description": "Schema version for compatibility detection",
	}
}

func objectSchema(title, description string, props map[string]interface{}, required ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"title":       title,
		"description": description,
		"properties":  props,
		"required":    append([]string{"type", "schemaVersion"}, required...),
	}
}

func entryListSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"key":   prop("string", "Histogram key"),
				"count": prop("integer", "Occurrences"),
			},
			"required": []string{"key", "count"},
		},
	}
}

func analysisSchema() map[string]interface{} {
	return objectSchema("Analysis", "Keyword totals and ranked histograms for one run", map[string]interface{}{
		"type":          constProp("analysis"),
		"schemaVersion": schemaVersionProperty(),
		"mode":          map[string]interface{}{"type": "string", "enum": []string{"serial", "parallel"}},
		"workers":       prop("integer", "Workers used (1 in serial mode)"),
		"files":         map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"lines":         prop("integer", "Lines aggregated"),
		"keywords": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"info":    prop("integer", "Lines containing INFO"),
				"error":   prop("integer", "Lines containing ERROR"),
				"warning": prop("integer", "Lines containing WARNING"),
				"debug":   prop("integer", "Lines containing DEBUG"),
			},
		},
		"uniqueIps":           prop("integer", "Distinct IP tokens"),
		"uniqueErrorMessages": prop("integer", "Distinct error messages"),
		"topN":                prop("integer", "Requested entries per ranked section"),
		"topIps":              entryListSchema("Most frequent IP tokens, count descending"),
		"topErrorMessages":    entryListSchema("Most frequent ERROR messages, count descending"),
		"elapsedSeconds":      prop("number", "Analysis wall time, excluding file reading"),
	}, "mode", "workers", "lines", "keywords", "topIps", "topErrorMessages")
}

func benchmarkSchema() map[string]interface{} {
	return objectSchema("Benchmark", "Averaged serial and parallel timings for one file", map[string]interface{}{
		"type":            constProp("benchmark"),
		"schemaVersion":   schemaVersionProperty(),
		"file":            prop("string", "Input file"),
		"lines":           prop("integer", "Lines read"),
		"workers":         prop("integer", "Parallel workers"),
		"runs":            prop("integer", "Timed runs averaged per mode"),
		"serialSeconds":   prop("number", "Average serial time"),
		"parallelSeconds": prop("number", "Average parallel time"),
		"speedup":         prop("number", "serialSeconds / parallelSeconds (0 when parallel time is 0)"),
		"efficiency":      prop("number", "speedup / workers * 100"),
		"consistent":      prop("boolean", "Serial and parallel results were equal"),
	}, "file", "lines", "speedup", "efficiency", "consistent")
}

func errorSchema() map[string]interface{} {
	return objectSchema("Error", "A failure; the process exits non-zero", map[string]interface{}{
		"type":          constProp("error"),
		"schemaVersion": schemaVersionProperty(),
		"code": map[string]interface{}{
			"type": "string",
			"enum": []string{
				"INVALID_CONFIG", "INVALID_FILTER", "INVALID_ARGS", "FILE_NOT_FOUND", "READ_ERROR",
				"NO_FILES", "WRITE_ERROR", "ANALYSIS_FAILED", "INCONSISTENT_RESULTS",
			},
		},
		"message": prop("string", "Human-readable message"),
		"hint":    prop("string", "Suggested fix"),
	}, "code", "message")
}

func infoSchema() map[string]interface{} {
	return objectSchema("Info", "Informational message", map[string]interface{}{
		"type":          constProp("info"),
		"schemaVersion": schemaVersionProperty(),
		"message":       prop("string", "Message"),
		"file":          prop("string", "File the message refers to"),
		"lines":         prop("integer", "Line count of that file"),
	}, "message")
}

func warningSchema() map[string]interface{} {
	return objectSchema("Warning", "Non-fatal problem", map[string]interface{}{
		"type":          constProp("warning"),
		"schemaVersion": schemaVersionProperty(),
		"message":       prop("string", "Message"),
	}, "message")
}

func metadataSchema() map[string]interface{} {
	return objectSchema("Metadata", "Build information", map[string]interface{}{
		"type":          constProp("metadata"),
		"schemaVersion": schemaVersionProperty(),
		"version":       prop("string", "Release version"),
		"commit":        prop("string", "Source commit"),
		"build_date":    prop("string", "Build date"),
	}, "version", "commit")
}

func sourceStatsSchema() map[string]interface{} {
	return objectSchema("Source Stats", "What the reader dropped before analysis", map[string]interface{}{
		"type":          constProp("source_stats"),
		"schemaVersion": schemaVersionProperty(),
		"read":          prop("integer", "Non-empty lines seen"),
		"kept":          prop("integer", "Lines analyzed"),
		"filtered":      prop("integer", "Lines rejected by --pattern/--exclude/--keyword/--skip-prefix"),
		"invalid":       prop("integer", "Lines that were not JSON or lacked --json-field"),
	}, "read", "kept", "filtered", "invalid")
}
