package cli

import (
	mcpadapter "github.com/abdidvp/storefront/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the storefront MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start storefront MCP server (stdio)",
		Long:  "Start the storefront MCP server using stdio transport. Agents can list products, read the stock total and place orders against one in-memory catalog for the lifetime of the process.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.close()

			s := mcpadapter.NewStorefrontMCPServer(rt.svc)
			return server.ServeStdio(s)
		},
	}
}
