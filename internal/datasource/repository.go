package datasource

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/krugerlabs/kruger-trivia/internal/config"
)

// Repository exposes read-only queries against the OSO data lake tables.
// Column names follow the probed schemas of projects_v1, artifacts_v1,
// key_metrics_by_project_v0 and contracts_v0.
type Repository interface {
	ProjectNames(ctx context.Context, limit int) ([]string, error)
	DisplayNames(ctx context.Context, limit int) ([]string, error)
	ArtifactNames(ctx context.Context, limit int) ([]string, error)
	TopProjectsByStars(ctx context.Context, n int) ([]ProjectMetric, error)
	TopProjectsByContributors(ctx context.Context, n int) ([]ProjectMetric, error)
	ContractNames(ctx context.Context, limit int) ([]string, error)
	SecurityProjectNames(ctx context.Context, limit int) ([]string, error)
	KeyMetricColumns(ctx context.Context) ([]string, error)
}

type osoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &osoRepository{db: db}
}

func (r *osoRepository) ProjectNames(ctx context.Context, limit int) ([]string, error) {
	return r.names(ctx, "SELECT project_name FROM projects_v1 LIMIT ?", limit)
}

func (r *osoRepository) DisplayNames(ctx context.Context, limit int) ([]string, error) {
	return r.names(ctx, "SELECT DISTINCT display_name FROM projects_v1 WHERE display_name IS NOT NULL LIMIT ?", limit)
}

func (r *osoRepository) ArtifactNames(ctx context.Context, limit int) ([]string, error) {
	return r.names(ctx, "SELECT DISTINCT artifact_name FROM artifacts_v1 WHERE artifact_name IS NOT NULL LIMIT ?", limit)
}

func (r *osoRepository) TopProjectsByStars(ctx context.Context, n int) ([]ProjectMetric, error) {
	return r.metrics(ctx,
		"SELECT project_name, stars AS value FROM key_metrics_by_project_v0 WHERE stars IS NOT NULL ORDER BY stars DESC LIMIT ?", n)
}

func (r *osoRepository) TopProjectsByContributors(ctx context.Context, n int) ([]ProjectMetric, error) {
	return r.metrics(ctx,
		"SELECT project_name, contributors AS value FROM key_metrics_by_project_v0 WHERE contributors IS NOT NULL ORDER BY contributors DESC LIMIT ?", n)
}

// ContractNames tolerates the absence of contracts_v0, which is not present
// in every deployment of the data lake. A failed query yields an empty set.
func (r *osoRepository) ContractNames(ctx context.Context, limit int) ([]string, error) {
	names, err := r.names(ctx, "SELECT DISTINCT contract_name FROM contracts_v0 WHERE contract_name IS NOT NULL LIMIT ?", limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Debug("contracts_v0 unavailable")
		return nil, nil
	}
	return names, nil
}

func (r *osoRepository) SecurityProjectNames(ctx context.Context, limit int) ([]string, error) {
	return r.names(ctx,
		"SELECT DISTINCT project_name FROM projects_v1 WHERE LOWER(project_name) LIKE '%security%' OR LOWER(project_name) LIKE '%audit%' OR LOWER(project_name) LIKE '%safe%' LIMIT ?", limit)
}

// KeyMetricColumns probes key_metrics_by_project_v0 for numeric columns that
// could back a metric question.
func (r *osoRepository) KeyMetricColumns(ctx context.Context) ([]string, error) {
	rows, err := r.db.WithContext(ctx).Raw("SELECT * FROM key_metrics_by_project_v0 LIMIT 1").Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to probe key metrics: %w", err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	var cols []string
	for _, ct := range types {
		name := ct.Name()
		if name == "project_name" || name == "id" {
			continue
		}
		if isNumericColumn(ct.DatabaseTypeName()) {
			cols = append(cols, name)
		}
	}
	return cols, nil
}

func (r *osoRepository) names(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Raw(query, limit).Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("name query failed: %w", err)
	}
	return filterNames(names), nil
}

func (r *osoRepository) metrics(ctx context.Context, query string, n int) ([]ProjectMetric, error) {
	var records []ProjectMetric
	if err := r.db.WithContext(ctx).Raw(query, n).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("metric query failed: %w", err)
	}
	return filterMetrics(records), nil
}
