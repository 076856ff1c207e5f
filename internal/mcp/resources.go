// resources.go implements MCP resource handlers for guide access.
//
// Resource URIs follow the pattern pathkit://guide/{topic}. An empty topic
// returns the main guide, mirroring "pathkit guide".

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/pathkit/guide"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

// readGuide handles pathkit://guide/{topic} resource requests.
func (h *handlers) readGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	uri := req.Params.URI
	topic, err := parseGuideURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from pathkit://guide/{topic}.
func parseGuideURI(uri string) (string, error) {
	const prefix = "pathkit://guide/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	topic := strings.TrimPrefix(uri, prefix)
	if strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: nested topic %q", ErrInvalidURI, topic)
	}
	return topic, nil
}
