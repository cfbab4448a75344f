package excel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMapping_RenamesDeclaredColumns(t *testing.T) {
	row := Row{
		"名称":   "张三",
		"出席情况": "出席",
		"提供内部引荐": "3",
	}
	mappings := MappingFromTemplate(DefaultWeeklyColumns)

	rec := ApplyMapping(row, mappings, nil)

	require.Equal(t, "张三", rec[FieldMemberName])
	require.Equal(t, "出席", rec[FieldAttendance])
	require.Equal(t, "3", rec[FieldProvideInsideRef])
}

func TestApplyMapping_MissingSourceColumnLeavesFieldUnset(t *testing.T) {
	row := Row{"名称": "张三"}
	mappings := MappingFromTemplate(DefaultWeeklyColumns)

	rec := ApplyMapping(row, mappings, nil)

	_, ok := rec[FieldTYFCB]
	require.False(t, ok)
}

func TestApplyMapping_FallbackFillsOnlyUnsetFields(t *testing.T) {
	row := Row{"名称": "李四", "交易价值": "5000"}
	mappings := MappingFromTemplate(map[string]string{
		FieldMemberName: "名称",
		FieldTYFCB:      "交易价值",
	})
	fallback := map[string]string{
		FieldTYFCB:    "0",
		FieldVisitors: "1",
	}

	rec := ApplyMapping(row, mappings, fallback)

	require.Equal(t, "5000", rec[FieldTYFCB], "fallback must not overwrite a mapped value")
	require.Equal(t, "1", rec[FieldVisitors])
}

func TestMappingFromTemplate_SkipsEmptyColumns(t *testing.T) {
	mappings := MappingFromTemplate(map[string]string{
		FieldMemberName: "Name",
		FieldCEU:        "",
	})

	require.Len(t, mappings, 1)
	require.Equal(t, FieldMemberName, mappings[0].Field)
	require.Equal(t, "Name", mappings[0].SourceColumn)
}
