package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistinct(t *testing.T) {
	tags := SelectManySlice(From(sampleCourses()), func(c course) []tag { return c.Tags })

	got, err := Distinct(tags).ToSlice()
	require.NoError(t, err)
	require.Equal(t, []tag{{1, "c#"}, {2, "beginner"}, {3, "go"}}, got)
}

func TestDistinctBy(t *testing.T) {
	got, err := Select(DistinctBy(From(sampleCourses()), courseLevel), courseName).ToSlice()
	require.NoError(t, err)
	require.Equal(t, []string{"C# Basics", "C# Advanced"}, got)

	_, err = DistinctBy[course, int](From(sampleCourses()), nil).ToSlice()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDistinctRows(t *testing.T) {
	rows := []Row{
		{"name": "alice", "age": int64(30)},
		{"name": "bob", "age": int64(25)},
		{"age": int64(30), "name": "alice"},
		{"name": "alice", "age": "30"},
	}

	got, err := DistinctRows(From(rows)).ToSlice()
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "bob", got[1]["name"])
	require.Equal(t, "30", got[2]["age"])
}

func TestDistinctRows_ValueEquality(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want int
	}{
		{"signed zero", []Row{{"x": 0.0}, {"x": math.Copysign(0, -1)}}, 1},
		{"integer widths", []Row{{"x": int32(1)}, {"x": int64(1)}, {"x": 1.0}}, 1},
		{"number and string differ", []Row{{"x": int64(1)}, {"x": "1"}}, 2},
		{"lists", []Row{{"tags": []any{int64(1), int64(3)}}, {"tags": []any{int32(1), int32(3)}}, {"tags": []any{int64(3), int64(1)}}}, 2},
		{"bytes", []Row{{"b": []byte("a")}, {"b": []byte("a")}, {"b": []byte("b")}}, 2},
		{"missing column is not nil", []Row{{"x": nil}, {}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistinctRows(From(tt.rows)).Count()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDistinctBy_UnhashableKey(t *testing.T) {
	rows := []Row{{"tags": []any{int64(1)}}, {"tags": []any{int64(1)}}}

	_, err := DistinctBy(From(rows), Field("tags")).ToSlice()
	require.ErrorIs(t, err, ErrInvalidArgument)

	got, err := DistinctBy(From(rows), FieldKey("tags")).Count()
	require.NoError(t, err)
	require.Equal(t, 1, got)
}
