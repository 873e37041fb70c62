package mcp

import (
	"github.com/abdidvp/storefront/internal/application"
	"github.com/mark3labs/mcp-go/server"
)

// NewStorefrontMCPServer creates a new MCP server with all storefront tools
// and resources registered against svc. All calls share svc's catalog, so
// orders placed through the server deplete stock for later calls.
func NewStorefrontMCPServer(svc *application.ShopService) *server.MCPServer {
	s := server.NewMCPServer(
		"storefront",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
