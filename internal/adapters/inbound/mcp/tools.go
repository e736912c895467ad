package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/analyzer"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/config"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/gitinfo"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/history"
	"github.com/AreteDriver/claudemd-forge/internal/adapters/outbound/scanner"
	"github.com/AreteDriver/claudemd-forge/internal/application"
	"github.com/AreteDriver/claudemd-forge/internal/domain"
)

// registerTools registers all forge MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. forge_scan
	s.AddTool(
		mcplib.NewTool("forge_scan",
			mcplib.WithDescription("Scan the project and return the detected structure, languages, commands, conventions, and domain terms as JSON"),
		),
		handleScan(projectPath),
	)

	// 2. forge_generate
	s.AddTool(
		mcplib.NewTool("forge_generate",
			mcplib.WithDescription("Generate a CLAUDE.md context document from codebase analysis. Returns the markdown document."),
		),
		handleGenerate(projectPath),
	)

	// 3. forge_audit
	s.AddTool(
		mcplib.NewTool("forge_audit",
			mcplib.WithDescription("Audit an existing CLAUDE.md against the codebase. Returns score, findings, and recommendations as JSON."),
			mcplib.WithString("file",
				mcplib.Description("Document to audit relative to the project root (default: CLAUDE.md)"),
			),
		),
		handleAudit(projectPath),
	)
}

// newPipeline wires the standard scanner, config loader, and analyzer set.
func newPipeline() *application.Pipeline {
	return application.NewPipeline(
		scanner.New(),
		config.New(),
		analyzer.NewLanguageAnalyzer(),
		analyzer.NewPatternAnalyzer(),
		analyzer.NewCommandAnalyzer(),
		analyzer.NewDomainAnalyzer(),
	)
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		structure, analyses, err := newPipeline().Run(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}

		out := struct {
			Structure *domain.ProjectStructure `json:"structure"`
			Analyses  []domain.AnalysisResult  `json:"analyses"`
		}{structure, analyses}

		return jsonResult(out)
	}
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewGenerateService(newPipeline(), gitinfo.New())
		content, _, _, err := svc.Generate(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return textResult(content), nil
	}
}

func handleAudit(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, _ := request.GetArguments()["file"].(string)
		if file == "" {
			file = "CLAUDE.md"
		}
		documentPath := file
		if !filepath.IsAbs(documentPath) {
			documentPath = filepath.Join(projectPath, documentPath)
		}

		svc := application.NewAuditService(newPipeline(), gitinfo.New(), history.New())
		report, err := svc.Audit(projectPath, documentPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
