package tui

import (
	"context"
	"errors"
	"testing"
	bookingMocks "travel/internal/domains/booking/mocks"
	bookingDto "travel/internal/domains/booking/model/dto"
	catalogMocks "travel/internal/domains/catalog/mocks"
	catalogDto "travel/internal/domains/catalog/model/dto"
	"travel/internal/domains/page"
	reportMocks "travel/internal/domains/report/mocks"
	reportDto "travel/internal/domains/report/model/dto"
	tableMocks "travel/internal/domains/table/mocks"
	tableDto "travel/internal/domains/table/model/dto"
	userMocks "travel/internal/domains/user/mocks"
	userDto "travel/internal/domains/user/model/dto"
	gDto "travel/shared/dto"
	"travel/shared/timezone"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	table   *tableMocks.MockTableService
	report  *reportMocks.MockReportService
	user    *userMocks.MockUserService
	catalog *catalogMocks.MockCatalogService
	booking *bookingMocks.MockBookingService
}

func newConsole(t *testing.T) (*Console, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		table:   tableMocks.NewMockTableService(ctrl),
		report:  reportMocks.NewMockReportService(ctrl),
		user:    userMocks.NewMockUserService(ctrl),
		catalog: catalogMocks.NewMockCatalogService(ctrl),
		booking: bookingMocks.NewMockBookingService(ctrl),
	}

	return New(nil, nil, nil, Services{
		Table:   d.table,
		Report:  d.report,
		User:    d.user,
		Catalog: d.catalog,
		Booking: d.booking,
	}), d
}

// drain runs load and action commands and feeds their messages back.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	queue := []tea.Cmd{cmd}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case choicesMsg, resultMsg:
			model, cmd := m.Update(msg)
			m = model.(Model)
			queue = append(queue, cmd)
		}
	}

	return m
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	for _, k := range keys {
		var model tea.Model
		model, cmd = m.Update(k)
		m = model.(Model)
	}

	return m, cmd
}

func users() userDto.GetUserNamesResponse {
	return userDto.GetUserNamesResponse{Users: []userDto.UserName{
		{UserID: 1, Username: "kwame"},
		{UserID: 2, Username: "ama"},
	}}
}

func TestModel_UnknownStartPageOpensHome(t *testing.T) {
	app, _ := newConsole(t)

	m := NewModel(context.Background(), app, "nowhere")

	assert.Equal(t, page.SlugHome, m.slug())
	assert.Equal(t, focusSidebar, m.focus)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), page.Welcome)
}

func TestModel_SidebarNavigation(t *testing.T) {
	app, d := newConsole(t)
	d.table.EXPECT().Tables(gomock.Any()).Return(tableDto.GetTablesResponse{Tables: []string{"User", "Region"}})

	m := NewModel(context.Background(), app, page.SlugHome)

	m, _ = press(m, key(tea.KeyUp))
	assert.Equal(t, len(page.All)-1, m.cursor)

	m, _ = press(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))

	assert.Equal(t, page.SlugViewData, m.slug())
	assert.Equal(t, focusForm, m.focus)

	m, _ = press(m, key(tea.KeyEsc))
	assert.Equal(t, focusSidebar, m.focus)

	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewData(t *testing.T) {
	app, d := newConsole(t)
	d.table.EXPECT().Tables(gomock.Any()).Return(tableDto.GetTablesResponse{Tables: []string{"User", "Region"}})

	frame := gDto.NewFrame([]string{"RegionID", "RegionName"})
	frame.Append([]any{int64(1), "Greater Accra"})
	d.table.EXPECT().Browse(gomock.Any(), "Region", gDto.QueryParams{}).Return(tableDto.BrowseTableResponse{Table: "Region", Frame: frame}, nil)

	m := NewModel(context.Background(), app, page.SlugViewData)

	m, cmd := press(m, key(tea.KeyRight), key(tea.KeyEnter))
	assert.True(t, m.loading)

	m = drain(t, m, cmd)

	assert.False(t, m.loading)
	assert.Equal(t, focusResult, m.focus)
	require.NotNil(t, m.result)
	assert.Contains(t, m.View(), "Greater Accra")

	m, _ = press(m, key(tea.KeyEsc))
	assert.Equal(t, focusForm, m.focus)
}

func TestModel_QueriesRebuildParams(t *testing.T) {
	app, d := newConsole(t)
	d.report.EXPECT().List(gomock.Any()).Return(reportDto.ListReportsResponse{Reports: []reportDto.ReportResponse{
		{Slug: "flight-details", Title: "Flight Details", Params: []reportDto.ParamResponse{{Name: "airport_name", Label: "Departure airport", Default: "Kotoka International Airport"}}},
		{Slug: "attraction-count", Title: "Attraction Count by Region"},
		{Slug: "top-restaurants", Title: "Top Restaurants", Params: []reportDto.ParamResponse{{Name: "limit", Label: "Limit", Default: "5"}}},
	}})
	d.report.EXPECT().Run(gomock.Any(), "top-restaurants", map[string]string{"limit": "5"}, false).Return(reportDto.RunReportResponse{Slug: "top-restaurants"}, nil)

	m := NewModel(context.Background(), app, page.SlugQueries)
	assert.Equal(t, map[string]string{fieldReport: "flight-details", "airport_name": "Kotoka International Airport"}, m.form.values())

	m, _ = press(m, key(tea.KeyRight))
	assert.Equal(t, map[string]string{fieldReport: "attraction-count"}, m.form.values())

	m, cmd := press(m, key(tea.KeyRight), key(tea.KeyEnter))
	m = drain(t, m, cmd)

	assert.NoError(t, m.err)
	assert.NotNil(t, m.result)
}

func TestModel_AddUserShowsError(t *testing.T) {
	app, d := newConsole(t)
	d.user.EXPECT().Create(gomock.Any(), userDto.CreateUserRequest{Username: "kwame"}).Return(userDto.CreateUserResponse{}, errors.New("username kwame already exists"))

	m := NewModel(context.Background(), app, page.SlugAddUser)

	m, _ = press(m, runes("kwame"))
	m, cmd := press(m, key(tea.KeyEnter))
	m = drain(t, m, cmd)

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "username kwame already exists")
}

func TestModel_MakeBooking(t *testing.T) {
	app, d := newConsole(t)
	d.user.EXPECT().Names(gomock.Any()).Return(users(), nil)
	d.catalog.EXPECT().Options(gomock.Any(), "flight").Return(catalogDto.GetOptionsResponse{Options: []catalogDto.Option{{ID: 11, Name: "AW101"}}}, nil)
	d.catalog.EXPECT().Options(gomock.Any(), "restaurant").Return(catalogDto.GetOptionsResponse{Options: []catalogDto.Option{{ID: 30, Name: "Buka"}}}, nil)
	d.catalog.EXPECT().Options(gomock.Any(), "attraction").Return(catalogDto.GetOptionsResponse{}, nil)

	flightID := int64(11)
	d.booking.EXPECT().
		Create(gomock.Any(), bookingDto.CreateBookingRequest{UserID: 2, BookingDate: timezone.Today(), FlightID: &flightID}).
		Return(bookingDto.CreateBookingResponse{BookingID: 7, TotalCost: "420.50"}, nil)

	m := NewModel(context.Background(), app, page.SlugMakeBooking)
	m = drain(t, m, m.Init())

	assert.Equal(t, "None", m.form.field("flight").selectedLabel())

	// user: kwame -> ama, then skip the date and pick the first flight
	m, _ = press(m, key(tea.KeyRight), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyRight))
	m, cmd := press(m, key(tea.KeyEnter))
	m = drain(t, m, cmd)

	assert.NoError(t, m.err)
	assert.Equal(t, "Booking 7 created. Total cost: 420.50", m.message)
}

func TestModel_DeleteBookingConfirms(t *testing.T) {
	app, d := newConsole(t)
	d.user.EXPECT().Names(gomock.Any()).Return(users(), nil)
	d.booking.EXPECT().GetSummaries(gomock.Any(), int64(1)).Return(bookingDto.GetBookingSummariesResponse{Bookings: []bookingDto.BookingSummary{
		{BookingID: 9, Label: "Booking ID: 9 - Date: 2024-07-10 - Total Cost: 550.00"},
	}}, nil)
	d.booking.EXPECT().Delete(gomock.Any(), int64(9)).Return(bookingDto.DeleteBookingResponse{BookingID: 9, Deleted: 1}, nil)
	d.booking.EXPECT().GetSummaries(gomock.Any(), int64(1)).Return(bookingDto.GetBookingSummariesResponse{}, nil)

	m := NewModel(context.Background(), app, page.SlugDeleteBooking)
	m = drain(t, m, m.Init())

	assert.Equal(t, "9", m.form.field(fieldBooking).value())

	m, cmd := press(m, key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, focusConfirm, m.focus)
	assert.Contains(t, m.View(), "Delete Booking ID: 9")

	m, _ = press(m, key(tea.KeyLeft))
	m, cmd = press(m, key(tea.KeyEnter))
	m = drain(t, m, cmd)

	assert.Equal(t, "Booking 9 deleted.", m.message)
	assert.Equal(t, focusForm, m.focus)
	assert.Equal(t, "No bookings", m.form.field(fieldBooking).selectedLabel())
}

func TestModel_DeleteBookingCancelled(t *testing.T) {
	app, d := newConsole(t)
	d.user.EXPECT().Names(gomock.Any()).Return(users(), nil)
	d.booking.EXPECT().GetSummaries(gomock.Any(), int64(1)).Return(bookingDto.GetBookingSummariesResponse{Bookings: []bookingDto.BookingSummary{
		{BookingID: 9, Label: "Booking ID: 9"},
	}}, nil)

	m := NewModel(context.Background(), app, page.SlugDeleteBooking)
	m = drain(t, m, m.Init())

	m, _ = press(m, key(tea.KeyEnter))
	m, cmd := press(m, key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
	assert.Empty(t, m.message)
}

func TestModel_CheckBookings(t *testing.T) {
	t.Run("lists the selected user's bookings", func(t *testing.T) {
		app, d := newConsole(t)
		d.user.EXPECT().Names(gomock.Any()).Return(users(), nil)
		d.booking.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, userID *int64) (bookingDto.GetBookingsResponse, error) {
				assert.Equal(t, int64(1), *userID)

				return bookingDto.GetBookingsResponse{Bookings: []bookingDto.BookingResponse{
					{BookingID: 3, UserID: 1, BookingDate: "2024-07-10", TotalCost: "550.00"},
				}}, nil
			})

		m := NewModel(context.Background(), app, page.SlugCheckBookings)
		m = drain(t, m, m.Init())

		m, cmd := press(m, key(tea.KeyEnter))
		m = drain(t, m, cmd)

		require.NotNil(t, m.result)
		assert.Equal(t, [][]string{{"3", "1", "2024-07-10", "550.00"}}, rows(m))
	})

	t.Run("without users", func(t *testing.T) {
		app, d := newConsole(t)
		d.user.EXPECT().Names(gomock.Any()).Return(userDto.GetUserNamesResponse{}, nil)

		m := NewModel(context.Background(), app, page.SlugCheckBookings)
		m = drain(t, m, m.Init())

		m, cmd := press(m, key(tea.KeyEnter))

		assert.Nil(t, cmd)
		assert.ErrorIs(t, m.err, errNoUser)
	})
}

func TestModel_IgnoresMessagesForOtherPages(t *testing.T) {
	app, _ := newConsole(t)

	m := NewModel(context.Background(), app, page.SlugAddUser)

	model, _ := m.Update(resultMsg{page: page.SlugViewData, message: "stale"})

	assert.Empty(t, model.(Model).message)
}

func rows(m Model) [][]string {
	out := [][]string{}
	for _, row := range m.result.Rows() {
		out = append(out, []string(row))
	}

	return out
}
