package datasource

import "strings"

const maxNameLength = 40

// usableName drops empty values, over-long values and anything that looks
// like a wallet address rather than a name.
func usableName(name string) bool {
	if name == "" || len(name) > maxNameLength {
		return false
	}
	return !strings.HasPrefix(name, "0x")
}

func filterNames(names []string) []string {
	filtered := names[:0]
	for _, name := range names {
		if usableName(name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func filterMetrics(records []ProjectMetric) []ProjectMetric {
	filtered := records[:0]
	for _, rec := range records {
		if usableName(rec.ProjectName) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

var numericTypeNames = map[string]struct{}{
	"INT":      {},
	"INT2":     {},
	"INT4":     {},
	"INT8":     {},
	"INTEGER":  {},
	"BIGINT":   {},
	"SMALLINT": {},
	"FLOAT4":   {},
	"FLOAT8":   {},
	"REAL":     {},
	"DOUBLE":   {},
	"NUMERIC":  {},
	"DECIMAL":  {},
}

func isNumericColumn(databaseTypeName string) bool {
	_, ok := numericTypeNames[strings.ToUpper(databaseTypeName)]
	return ok
}
