package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/storefront/internal/application"
	"github.com/abdidvp/storefront/internal/domain"
)

// registerTools registers all storefront MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ShopService) {
	// 1. storefront_list_products
	s.AddTool(
		mcplib.NewTool("storefront_list_products",
			mcplib.WithDescription("Returns the numbered list of active products as JSON. Use the index field when placing orders."),
		),
		handleListProducts(svc),
	)

	// 2. storefront_total_quantity
	s.AddTool(
		mcplib.NewTool("storefront_total_quantity",
			mcplib.WithDescription("Returns the total stock of all active products"),
		),
		handleTotalQuantity(svc),
	)

	// 3. storefront_place_order
	s.AddTool(
		mcplib.NewTool("storefront_place_order",
			mcplib.WithDescription("Buys products by list index. Lines are processed in order; if one fails, earlier lines stay bought."),
			mcplib.WithString("items",
				mcplib.Required(),
				mcplib.Description("Comma-separated INDEX:QUANTITY pairs, e.g. \"1:2,3:1\""),
			),
		),
		handlePlaceOrder(svc),
	)
}

func handleListProducts(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Products())
	}
}

func handleTotalQuantity(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(map[string]int{"total_quantity": svc.TotalQuantity()})
	}
}

func handlePlaceOrder(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		items, err := request.RequireString("items")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		lines, err := application.ParseOrderLines([]string{items})
		if err != nil {
			return errorResult(err.Error()), nil
		}

		receipt, err := svc.PlaceOrder(lines)
		if err != nil {
			return errorResult(fmt.Sprintf("order failed (%s): %v", domain.FailureReason(err), err)), nil
		}
		return jsonResult(receipt)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
