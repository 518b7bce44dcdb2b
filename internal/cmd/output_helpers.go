package cmd

import (
	"context"

	"github.com/salmonumbrella/txt2opml/internal/output"
)

func structuredOutputRequested() bool {
	return output.IsStructured(GetOutputFormat())
}

func printStructured(ctx context.Context, data interface{}) error {
	if ctx == nil {
		ctx = context.Background()
	}
	printer := output.NewPrinter(stdoutFromContext(ctx), GetOutputFormat())
	return printer.Print(ctx, data)
}
