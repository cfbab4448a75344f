package excel

// Canonical activity field names. Spreadsheet columns are renamed to these
// before validation and coercion.
const (
	FieldMemberName         = "memberName"
	FieldIdentity           = "identity"
	FieldAttendance         = "attendance"
	FieldProvideInsideRef   = "provideInsideRef"
	FieldProvideOutsideRef  = "provideOutsideRef"
	FieldReceivedInsideRef  = "receivedInsideRef"
	FieldReceivedOutsideRef = "receivedOutsideRef"
	FieldVisitors           = "visitors"
	FieldOneToOneVisit      = "oneToOneVisit"
	FieldTYFCB              = "tyfcb"
	FieldCEU                = "ceu"
)

// ColumnMapping renames one source column to a canonical field.
type ColumnMapping struct {
	SourceColumn string `json:"source_column"`
	Field        string `json:"field"`
}

// Record is a normalized row keyed by canonical field names. Values are the
// raw cell strings; coercion happens at the point of use.
type Record map[string]string

// DefaultWeeklyColumns is the built-in canonical-field → column-header table
// for the chapter's standard weekly sheet. It is a column mapping, not a set
// of default values; use MappingFromTemplate to apply it.
var DefaultWeeklyColumns = map[string]string{
	FieldMemberName:         "名称",
	FieldIdentity:           "身份",
	FieldAttendance:         "出席情况",
	FieldProvideInsideRef:   "提供内部引荐",
	FieldProvideOutsideRef:  "提供外部引荐",
	FieldReceivedInsideRef:  "收到内部引荐",
	FieldReceivedOutsideRef: "收到外部引荐",
	FieldVisitors:           "来宾",
	FieldOneToOneVisit:      "一对一会面",
	FieldTYFCB:              "交易价值",
	FieldCEU:                "CEU",
}

// MappingFromTemplate converts a field → source-column table (the shape
// mapping templates are stored and posted in) to an explicit mapping list.
func MappingFromTemplate(template map[string]string) []ColumnMapping {
	mappings := make([]ColumnMapping, 0, len(template))
	for field, column := range template {
		if column == "" {
			continue
		}
		mappings = append(mappings, ColumnMapping{SourceColumn: column, Field: field})
	}
	return mappings
}

// ApplyMapping normalizes one raw row. Declared mappings copy the cell found
// under the source column into the canonical field; a source column missing
// from the row leaves the field unset. Fallback supplies literal default
// values, only for fields still unset after the explicit pass.
func ApplyMapping(row Row, mappings []ColumnMapping, fallback map[string]string) Record {
	rec := make(Record, len(mappings))
	for _, m := range mappings {
		if value, ok := row[m.SourceColumn]; ok {
			rec[m.Field] = value
		}
	}
	for field, value := range fallback {
		if _, ok := rec[field]; !ok {
			rec[field] = value
		}
	}
	return rec
}
