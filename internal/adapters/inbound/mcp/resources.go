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

const catalogURI = "storefront://catalog"

// registerResources registers all storefront MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.ShopService) {
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Catalog",
			mcplib.WithResourceDescription("Every product in the store, including inactive ones"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(svc),
	)
}

func handleCatalogResource(svc *application.ShopService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		catalog := struct {
			Store         string               `json:"store"`
			TotalQuantity int                  `json:"total_quantity"`
			Products      []domain.ProductView `json:"products"`
		}{
			Store:         svc.Name(),
			TotalQuantity: svc.TotalQuantity(),
			Products:      svc.Catalog(),
		}

		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
