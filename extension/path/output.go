// output.go holds the result types and the shared run loop used by every
// command and MCP tool: prepare input, compute, log, print.

package path

import (
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/internal/log"
	pkmcp "github.com/jpl-au/pathkit/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
)

// valueResult is the JSON form of an operation with a single path result.
type valueResult struct {
	Op       string   `json:"op"`
	Platform string   `json:"platform"`
	Input    []string `json:"input"`
	Result   string   `json:"result"`
}

// valueFunc computes a single path result from prepared input.
type valueFunc func(s settings, in []string) (string, error)

// record writes the audit entry for one invocation.
func record(source, op string, s settings, in []string, result string, err error) {
	l := log.Event(source, op).Platform(s.platform.String())
	if len(in) > 0 {
		l.Path(in[0])
	}
	if len(in) > 1 {
		l.Detail("args", in[1:])
	}
	if err == nil {
		l.Result(result)
	}
	l.Write(err)
}

// compute runs fn over validated input.
func compute(s settings, op string, args []string, fn valueFunc) (string, error) {
	in, err := s.prepare(op, args)
	if err != nil {
		return "", err
	}
	return fn(s, in)
}

// runValue is the CLI path for single-result operations.
func (e *Extension) runValue(op string, args []string, fn valueFunc) error {
	s := e.current()
	out, err := compute(s, op, args, fn)
	record("path:"+op, op, s, args, out, err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if !cmd.JSON() {
		fmt.Fprintln(cmd.Out(), out)
		return nil
	}
	return cmd.PrintJSON(valueResult{Op: op, Platform: s.platform.String(), Input: args, Result: out})
}

// toolValue is the MCP path for single-result operations.
func (e *Extension) toolValue(req mcp.CallToolRequest, op string, args []string, fn valueFunc) (*mcp.CallToolResult, error) {
	s, err := e.current().withPlatform(pkmcp.String(req, "platform", ""))
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	out, err := compute(s, op, args, fn)
	record("mcp:path_"+op, op, s, args, out, err)
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	return pkmcp.JSONResult(valueResult{Op: op, Platform: s.platform.String(), Input: args, Result: out})
}
