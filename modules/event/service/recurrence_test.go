package service

import (
	"testing"
	"time"

	"friendsync-api/modules/event/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOccurrenceDaysWeekdaysSkipsWeekends(t *testing.T) {
	x := NewRecurrenceExpander()
	template := &entity.EventTemplate{ID: "t1", Title: "Work", Pattern: entity.PatternWeekdays}

	days, err := x.OccurrenceDays(template, day(2025, time.September, 1), day(2025, time.September, 30))
	require.NoError(t, err)

	// September 2025 has 22 weekdays
	assert.Len(t, days, 22)
	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

func TestOccurrenceDaysDailyIsInclusive(t *testing.T) {
	x := NewRecurrenceExpander()
	template := &entity.EventTemplate{ID: "t1", Title: "Gym", Pattern: entity.PatternDaily}

	days, err := x.OccurrenceDays(template, day(2025, time.September, 10), day(2025, time.September, 12))
	require.NoError(t, err)

	require.Len(t, days, 3)
	assert.Equal(t, day(2025, time.September, 10), days[0])
	assert.Equal(t, day(2025, time.September, 12), days[2])
}

func TestOccurrenceDaysUnknownPattern(t *testing.T) {
	x := NewRecurrenceExpander()
	template := &entity.EventTemplate{ID: "t1", Pattern: "fortnightly"}

	_, err := x.OccurrenceDays(template, day(2025, time.September, 1), day(2025, time.September, 30))
	assert.Error(t, err)
}

func TestExpandDailyFullMonth(t *testing.T) {
	x := NewRecurrenceExpander()
	templates := []entity.EventTemplate{
		{ID: "gym", Title: "Gym session", FriendID: "jacob", StartTime: "06:00", EndTime: "07:00", Kind: entity.EventKindBusy, Pattern: entity.PatternDaily},
	}

	instances := x.Expand(templates, day(2025, time.September, 1), day(2025, time.September, 30))

	require.Len(t, instances, 30)
	for _, inst := range instances {
		assert.True(t, inst.IsRecurring)
		assert.Equal(t, "gym", inst.TemplateID)
		assert.Equal(t, "Gym session", inst.Title)
		assert.Equal(t, "jacob", inst.FriendID)
		assert.Equal(t, "06:00", inst.StartTime)
		assert.Equal(t, "07:00", inst.EndTime)
		assert.Equal(t, entity.EventKindBusy, inst.Kind)
	}
	assert.Equal(t, "2025-09-01", instances[0].Date)
	assert.Equal(t, "2025-09-30", instances[29].Date)
}

func TestExpandInvertedWindowIsEmpty(t *testing.T) {
	x := NewRecurrenceExpander()
	templates := []entity.EventTemplate{
		{ID: "gym", Title: "Gym", Pattern: entity.PatternDaily},
	}

	instances := x.Expand(templates, day(2025, time.September, 30), day(2025, time.September, 1))
	assert.Empty(t, instances)
}

func TestExpandGeneratesUniqueIDs(t *testing.T) {
	x := NewRecurrenceExpander()
	templates := []entity.EventTemplate{
		{ID: "a", Title: "A", Pattern: entity.PatternDaily},
		{ID: "b", Title: "B", Pattern: entity.PatternWeekdays},
	}

	instances := x.Expand(templates, day(2025, time.September, 1), day(2025, time.September, 30))

	seen := make(map[string]struct{}, len(instances))
	for _, inst := range instances {
		_, dup := seen[inst.ID]
		require.False(t, dup, "duplicate instance id %s", inst.ID)
		seen[inst.ID] = struct{}{}
	}
}

func TestExpandSkipsInvalidTemplate(t *testing.T) {
	x := NewRecurrenceExpander()
	templates := []entity.EventTemplate{
		{ID: "bad", Title: "Bad", Pattern: "monthly"},
		{ID: "gym", Title: "Gym", Pattern: entity.PatternDaily},
	}

	instances := x.Expand(templates, day(2025, time.September, 1), day(2025, time.September, 3))

	require.Len(t, instances, 3)
	for _, inst := range instances {
		assert.Equal(t, "gym", inst.TemplateID)
	}
}
