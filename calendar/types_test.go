package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/calendar"
)

func newTestCalendar(t *testing.T) *calendar.ServiceCalendar {
	t.Helper()
	cal := calendar.NewServiceCalendar()
	require.NoError(t, cal.AddPeriod(calendar.ServicePeriod{
		BeginTime:  0,
		EndTime:    86399,
		ServiceIDs: []calendar.ServiceID{1},
	}))
	require.NoError(t, cal.AddPeriod(calendar.ServicePeriod{
		BeginTime:  86400,
		EndTime:    172799,
		ServiceIDs: []calendar.ServiceID{1},
	}))
	return cal
}

func TestAddPeriod_RejectsOutOfOrder(t *testing.T) {
	cal := newTestCalendar(t)
	err := cal.AddPeriod(calendar.ServicePeriod{BeginTime: 172800, EndTime: 100, ServiceIDs: []calendar.ServiceID{1}})
	require.ErrorIs(t, err, calendar.ErrUnsortedPeriod)

	err = cal.AddPeriod(calendar.ServicePeriod{BeginTime: 50, EndTime: 259200, ServiceIDs: []calendar.ServiceID{1}})
	require.ErrorIs(t, err, calendar.ErrUnsortedPeriod)
}

func TestPeriodOfOrAfter_AndBefore(t *testing.T) {
	cal := newTestCalendar(t)

	p, ok := cal.PeriodOfOrAfter(90000)
	require.True(t, ok)
	require.Equal(t, int64(86400), p.BeginTime)

	p, ok = cal.PeriodOfOrAfter(300000)
	require.False(t, ok)

	p, ok = cal.PeriodOfOrBefore(90000)
	require.True(t, ok)
	require.Equal(t, int64(86400), p.BeginTime)

	_, ok = cal.PeriodOfOrBefore(-1)
	require.False(t, ok)
}

func TestNextPrevWithService(t *testing.T) {
	cal := calendar.NewServiceCalendar()
	require.NoError(t, cal.AddPeriod(calendar.ServicePeriod{BeginTime: 0, EndTime: 86399, ServiceIDs: []calendar.ServiceID{1}}))
	require.NoError(t, cal.AddPeriod(calendar.ServicePeriod{BeginTime: 86400, EndTime: 172799, ServiceIDs: []calendar.ServiceID{2}}))
	require.NoError(t, cal.AddPeriod(calendar.ServicePeriod{BeginTime: 172800, EndTime: 259199, ServiceIDs: []calendar.ServiceID{1}}))

	second, ok := cal.PeriodOfOrAfter(90000)
	require.True(t, ok)

	next, ok := cal.NextWithService(second, 1)
	require.True(t, ok)
	require.Equal(t, int64(172800), next.BeginTime)

	_, ok = cal.NextWithService(second, 99)
	require.False(t, ok)

	last, ok := cal.PeriodOfOrBefore(200000)
	require.True(t, ok)
	prev, ok := cal.PrevWithService(last, 2)
	require.True(t, ok)
	require.Equal(t, int64(86400), prev.BeginTime)
}

func TestDatumMidnightAndNormalizeTime(t *testing.T) {
	cal := newTestCalendar(t)
	period, ok := cal.PeriodOfOrAfter(0)
	require.True(t, ok)

	const utcOffsetMinus5 = -18000 // UTC-05:00
	datum := calendar.DatumMidnight(period, utcOffsetMinus5)
	// The period begins at t=0, i.e. 19:00 local of the previous day, so
	// rounding down lands on that day's local midnight, 05:00 UTC of day -1.
	require.Equal(t, int64(-68400), datum)

	tod := calendar.NormalizeTime(period, utcOffsetMinus5, datum+30000)
	require.Equal(t, int64(30000), tod)

	// Overage: a time past local midnight+86400 still normalizes sanely.
	tod = calendar.NormalizeTime(period, utcOffsetMinus5, datum+86600)
	require.Equal(t, int64(86600), tod)
}

func TestHasService(t *testing.T) {
	p := calendar.ServicePeriod{ServiceIDs: []calendar.ServiceID{1, 2, 3}}
	require.True(t, p.HasService(2))
	require.False(t, p.HasService(calendar.NoServiceID))
}
