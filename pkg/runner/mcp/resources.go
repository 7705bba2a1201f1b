package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerHabitsResource(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerHabitsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"habit100://habits",
		"Habits",
		mcp.WithResourceDescription("Every habit in the tracker, inactive ones included."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		habits, err := svc.Tracker.Habits(ctx)
		if err != nil {
			return nil, err
		}

		dtos := make([]HabitDTO, 0, len(habits))
		for _, h := range habits {
			dtos = append(dtos, toHabitDTO(h))
		}

		payload := map[string]any{
			"habits": dtos,
			"count":  len(dtos),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"habit100://days/{day}",
		"Day Report",
		mcp.WithTemplateDescription("Checks and log lines recorded on one day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw, _ := request.Params.Arguments["day"].(string)
		if raw == "" {
			return nil, fmt.Errorf("day is required")
		}
		day, err := svc.ResolveDay(raw)
		if err != nil {
			return nil, err
		}

		report, err := svc.DayReport(ctx, day)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"report": report,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
