package datasource

// ProjectMetric is one row of a ranked key-metric query, e.g. a project and
// its star count.
type ProjectMetric struct {
	ProjectName string
	Value       int64
}
