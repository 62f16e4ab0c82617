package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-portal/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestGroupStopsByDay(t *testing.T) {
	stops := []domain.Stop{
		{ID: 1, DayNumber: 2, StopOrder: 1, Name: "Sossusvlei"},
		{ID: 2, DayNumber: 1, StopOrder: 2, Name: "Solitaire"},
		{ID: 3, DayNumber: 1, StopOrder: 1, Name: "Windhoek"},
		{ID: 4, DayNumber: 3, StopOrder: 1, Name: "Swakopmund"},
	}

	days := domain.GroupStopsByDay(stops)
	require.Len(t, days, 3)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, 3, days[2].Day)

	require.Len(t, days[0].Stops, 2)
	assert.Equal(t, "Windhoek", days[0].Stops[0].Name)
	assert.Equal(t, "Solitaire", days[0].Stops[1].Name)
}

func TestGroupStopsByDay_NumericDayOrder(t *testing.T) {
	stops := []domain.Stop{
		{DayNumber: 10}, {DayNumber: 2}, {DayNumber: 1},
	}

	days := domain.GroupStopsByDay(stops)
	require.Len(t, days, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{days[0].Day, days[1].Day, days[2].Day})
}

func TestGroupStopsByDay_StableForEqualOrder(t *testing.T) {
	stops := []domain.Stop{
		{ID: 7, DayNumber: 1, StopOrder: 1},
		{ID: 8, DayNumber: 1, StopOrder: 1},
	}

	days := domain.GroupStopsByDay(stops)
	require.Len(t, days, 1)
	assert.Equal(t, int64(7), days[0].Stops[0].ID)
	assert.Equal(t, int64(8), days[0].Stops[1].ID)
}

func TestGroupStopsByDay_Empty(t *testing.T) {
	days := domain.GroupStopsByDay(nil)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestFilterRoutes(t *testing.T) {
	routes := []domain.Route{
		{ID: 1, Duration: 1, Difficulty: domain.DifficultyEasy, StartLocation: "Windhoek"},
		{ID: 2, Duration: 2, Difficulty: domain.DifficultyModerate, StartLocation: "Swakopmund"},
		{ID: 3, Duration: 1, Difficulty: domain.DifficultyChallenging, StartLocation: "Windhoek CBD"},
	}

	tests := []struct {
		name   string
		filter domain.RouteFilter
		want   []int64
	}{
		{name: "no filter", filter: domain.RouteFilter{}, want: []int64{1, 2, 3}},
		{name: "duration keeps order", filter: domain.RouteFilter{Duration: intPtr(1)}, want: []int64{1, 3}},
		{name: "difficulty", filter: domain.RouteFilter{Difficulty: domain.DifficultyModerate}, want: []int64{2}},
		{name: "start location substring", filter: domain.RouteFilter{StartLocation: "WINDHOEK"}, want: []int64{1, 3}},
		{
			name:   "conjunctive",
			filter: domain.RouteFilter{Duration: intPtr(1), Difficulty: domain.DifficultyChallenging},
			want:   []int64{3},
		},
		{name: "nothing matches", filter: domain.RouteFilter{Duration: intPtr(14)}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FilterRoutes(routes, tt.filter)
			require.NotNil(t, got)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDifficulty_IsValid(t *testing.T) {
	assert.True(t, domain.DifficultyEasy.IsValid())
	assert.True(t, domain.DifficultyChallenging.IsValid())
	assert.False(t, domain.Difficulty("extreme").IsValid())
}
