package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/habit100/pkg/tracker"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListHabitsTool(srv, svc)
	registerAddHabitTool(srv, svc)
	registerToggleCheckTool(srv, svc)
	registerAppendLogTool(srv, svc)
	registerDayReportTool(srv, svc)
	registerEditHabitTool(srv, svc)
	registerDeleteHabitTool(srv, svc)
}

func registerListHabitsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_habits",
		mcp.WithDescription("List habits with their done state for a day."),
		mcp.WithString("day",
			mcp.Description("Day to inspect: YYYY-MM-DD, today, yesterday, tomorrow, or a signed offset like -1. Defaults to today."),
		),
		mcp.WithString("tag",
			mcp.Description("Only include habits carrying this tag."),
		),
		mcp.WithBoolean("include_inactive",
			mcp.Description("Include habits that are no longer active."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ResolveDay(request.GetString("day", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tag := strings.TrimSpace(request.GetString("tag", ""))
		includeInactive := request.GetBool("include_inactive", false)

		rows, err := svc.ListHabits(ctx, day, tag, includeInactive)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"day":    day,
			"habits": rows,
			"count":  len(rows),
		})
	})
}

func registerAddHabitTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_habit",
		mcp.WithDescription("Create a new habit."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Habit title."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma separated tags for filtering."),
		),
		mcp.WithString("type",
			mcp.Description("Habit type. check habits toggle a daily mark; log habits collect text lines. Anything else falls back to check."),
			mcp.Enum("check", "log"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title string `json:"title"`
			Tags  string `json:"tags"`
			Type  string `json:"type"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddHabit(ctx, args.Title, tracker.SplitTags(args.Tags), args.Type)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleCheckTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_check",
		mcp.WithDescription("Toggle the daily check of a check habit. Checking twice removes the mark again."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Habit id to toggle."),
		),
		mcp.WithString("day",
			mcp.Description("Day to toggle on; defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day, err := svc.ResolveDay(request.GetString("day", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := svc.ToggleCheck(ctx, id, day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerAppendLogTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"append_log",
		mcp.WithDescription("Append a text line to a log habit for a day. Logs are append-only."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Habit id to log against."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Log text; leading and trailing whitespace is trimmed."),
		),
		mcp.WithString("day",
			mcp.Description("Day to log on; defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day, err := svc.ResolveDay(request.GetString("day", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		record, err := svc.AppendLog(ctx, id, day, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"day":    day,
			"record": record,
		})
	})
}

func registerDayReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"day_report",
		mcp.WithDescription("Read the report for a day: checked habits and log lines in recorded order."),
		mcp.WithString("day",
			mcp.Description("Day to report on; defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ResolveDay(request.GetString("day", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		report, err := svc.DayReport(ctx, day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(report)
	})
}

func registerEditHabitTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_habit",
		mcp.WithDescription("Rewrite a habit's title, tags, or type. Omitted fields keep their current value; recorded days are never touched."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Habit id to edit."),
		),
		mcp.WithString("title",
			mcp.Description("New title."),
		),
		mcp.WithString("tags",
			mcp.Description("New comma separated tags; replaces the existing set."),
		),
		mcp.WithString("type",
			mcp.Description("New habit type."),
			mcp.Enum("check", "log"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var (
			title   *string
			tags    *[]string
			typeRaw *string
		)
		if v := request.GetString("title", ""); v != "" {
			title = &v
		}
		if v := request.GetString("tags", ""); v != "" {
			split := tracker.SplitTags(v)
			tags = &split
		}
		if v := request.GetString("type", ""); v != "" {
			typeRaw = &v
		}

		dto, err := svc.EditHabit(ctx, id, title, tags, typeRaw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteHabitTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_habit",
		mcp.WithDescription("Delete a habit and every record it has, on any day."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Habit id to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DeleteHabit(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
