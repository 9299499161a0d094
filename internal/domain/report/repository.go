package report

import "context"

type ReportRepository interface {
	// Overview left-joins employees to their attendance on the filter's
	// base date, applying the optional department and substring filters.
	Overview(ctx context.Context, filter OverviewFilter) ([]OverviewRow, error)
}
