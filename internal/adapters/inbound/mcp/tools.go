package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jisconv/jisconv/internal/adapters/outbound/config"
	"github.com/jisconv/jisconv/internal/adapters/outbound/converter"
	"github.com/jisconv/jisconv/internal/adapters/outbound/detector"
	"github.com/jisconv/jisconv/internal/adapters/outbound/scanner"
	"github.com/jisconv/jisconv/internal/application"
)

// registerTools registers all jisconv MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. jisconv_scan
	s.AddTool(
		mcplib.NewTool("jisconv_scan",
			mcplib.WithDescription("Scan the project for Shift_JIS-encoded source files; returns the full report as JSON"),
		),
		handleScan(projectPath),
	)

	// 2. jisconv_detect_file
	s.AddTool(
		mcplib.NewTool("jisconv_detect_file",
			mcplib.WithDescription("Detect the encoding of a single file"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file, relative to the project root"),
			),
		),
		handleDetectFile(projectPath),
	)

	// 3. jisconv_convert
	s.AddTool(
		mcplib.NewTool("jisconv_convert",
			mcplib.WithDescription("Convert all Shift_JIS files in the project to UTF-8, writing .jis backups first"),
			mcplib.WithString("backup_dir",
				mcplib.Required(),
				mcplib.Description("Directory that receives the mirrored .jis backups"),
			),
		),
		handleConvert(projectPath),
	)
}

func newScanService() *application.ScanService {
	detect := application.NewDetectService(detector.New(), application.DefaultMinConfidence)
	return application.NewScanService(scanner.New(), detect, config.New())
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newScanService().Scan(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleDetectFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		data, err := os.ReadFile(filepath.Join(projectPath, filepath.FromSlash(file)))
		if err != nil {
			return errorResult(fmt.Sprintf("reading %s: %v", file, err)), nil
		}

		detect := application.NewDetectService(detector.New(), application.DefaultMinConfidence)
		det := detect.Detect(data)
		return jsonResult(map[string]any{
			"path":       file,
			"encoding":   det.Encoding,
			"confidence": det.Confidence,
		})
	}
}

func handleConvert(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		backupDir, err := request.RequireString("backup_dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewConvertService(newScanService(), converter.New())
		report, err := svc.Convert(projectPath, backupDir)
		if err != nil {
			return errorResult(fmt.Sprintf("convert failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
