package ports

import (
	"io"

	"trade-compliance/internal/features/reporting/domain"
	reference "trade-compliance/internal/features/reference/domain"
)

// Renderer writes a cost report in one output format.
type Renderer interface {
	Format() domain.Format
	Render(w io.Writer, report domain.Report) error
}

// ReferenceRenderer writes reference data for humans.
type ReferenceRenderer interface {
	RenderCountry(w io.Writer, profile reference.CountryProfile) error
	RenderBilateral(w io.Writer, bilateral reference.BilateralContext) error
	RenderComparison(w io.Writer, cmp reference.Comparison) error
}
