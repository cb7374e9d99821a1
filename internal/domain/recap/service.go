package recap

import "context"

type RecapService interface {
	// Generate runs the full parse-evaluate-aggregate pipeline over the
	// request snapshot and returns a freshly built report.
	Generate(ctx context.Context, req GenerateRequest) (Report, error)
}
