package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/config"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/gitrepo"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/scanner"
	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/search"
	"github.com/groundwork-cli/groundwork/internal/application"
	"github.com/groundwork-cli/groundwork/internal/domain"
)

// registerTools registers all groundwork MCP tools on the given server.
// Tools are read-only: remediation stays behind the CLI's explicit --fix.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. groundwork_validate
	s.AddTool(
		mcplib.NewTool("groundwork_validate",
			mcplib.WithDescription("Validate the project against the full rule catalog; returns the CI JSON report"),
			mcplib.WithBoolean("strict", mcplib.Description("Escalate P2/P3 findings in the exit policy field")),
		),
		handleValidate(projectPath),
	)

	// 2. groundwork_anti_patterns
	s.AddTool(
		mcplib.NewTool("groundwork_anti_patterns",
			mcplib.WithDescription("Scan the project for anti-pattern heuristics; returns the CI JSON report"),
			mcplib.WithString("priority", mcplib.Description("Only evaluate rules of one severity (P0, P1, P2, P3)")),
			mcplib.WithBoolean("strict", mcplib.Description("Escalate P2/P3 findings in the exit policy field")),
		),
		handleAntiPatterns(projectPath),
	)
}

func newValidateService() *application.ValidateService {
	return application.NewValidateService(
		scanner.New(),
		search.New(),
		gitrepo.New(),
		config.New(),
	)
}

// toolReport is the CI report plus the exit code the CLI would have
// returned, so agents see the severity policy without re-deriving it.
type toolReport struct {
	domain.CIReport
	ExitCode int `json:"exit_code"`
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		strict := request.GetBool("strict", false)

		run, err := newValidateService().Validate(projectPath, application.ValidateOptions{Strict: strict})
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(toolReport{CIReport: run.Report.CI(), ExitCode: run.ExitCode()})
	}
}

func handleAntiPatterns(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		strict := request.GetBool("strict", false)

		opts := application.ValidateOptions{Strict: strict, AntiPatternsOnly: true}
		if raw := request.GetString("priority", ""); raw != "" {
			sev, err := domain.ParseSeverity(raw)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			opts.Priority = &sev
		}

		run, err := newValidateService().Validate(projectPath, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("anti-pattern scan failed: %v", err)), nil
		}
		return jsonResult(toolReport{CIReport: run.Report.CI(), ExitCode: run.ExitCode()})
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

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
