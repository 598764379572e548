package tui

import (
	"errors"
	"fmt"
	"strconv"
	bookingDto "travel/internal/domains/booking/model/dto"
	catalogModel "travel/internal/domains/catalog/model"
	"travel/internal/domains/page"
	reportModel "travel/internal/domains/report/model"
	reportDto "travel/internal/domains/report/model/dto"
	userDto "travel/internal/domains/user/model/dto"
	gDto "travel/shared/dto"
	"travel/shared/timezone"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTable       = "table"
	fieldReport      = "report"
	fieldUsername    = "username"
	fieldEmail       = "email"
	fieldNationality = "nationality"
	fieldUser        = "user"
	fieldBookingDate = "booking_date"
	fieldBooking     = "booking"
	fieldAirport     = "airport_name"
)

var (
	errNoUser    = errors.New("select a user first")
	errNoBooking = errors.New("the selected user has no bookings")
)

// choicesMsg fills a picker once its options are loaded.
type choicesMsg struct {
	page    string
	field   string
	choices []choice
	err     error
}

// resultMsg carries the outcome of a page action: a frame, a message or an error.
type resultMsg struct {
	page    string
	frame   *gDto.Frame
	message string
	err     error
}

var noneChoice = choice{Label: "None", Value: ""}

// formFor builds the form of a page and the commands that load its pickers.
func (m *Model) formFor(slug string) (*form, tea.Cmd) {
	switch slug {
	case page.SlugViewData:
		tables := m.app.Services.Table.Tables(m.ctx).Tables

		choices := make([]choice, len(tables))
		for i, name := range tables {
			choices[i] = choice{Label: name, Value: name}
		}

		return newForm(choiceField(fieldTable, "Table", choices)), nil
	case page.SlugQueries:
		m.reports = m.app.Services.Report.List(m.ctx).Reports

		choices := make([]choice, len(m.reports))
		for i, report := range m.reports {
			choices[i] = choice{Label: report.Title, Value: report.Slug}
		}

		f := newForm(choiceField(fieldReport, "Report", choices))
		if len(m.reports) > 0 {
			f.replaceFrom(1, paramFields(m.reports[0])...)
		}

		return f, nil
	case page.SlugAddUser:
		return newForm(
			textField(fieldUsername, "Username", ""),
			textField(fieldEmail, "Email", ""),
			textField(fieldNationality, "Nationality", ""),
		), nil
	case page.SlugMakeBooking:
		return newForm(
				choiceField(fieldUser, "User", nil),
				textField(fieldBookingDate, "Booking date", timezone.Today()),
				choiceField(catalogModel.KindFlight, "Flight", nil),
				choiceField(catalogModel.KindRestaurant, "Restaurant", nil),
				choiceField(catalogModel.KindAttraction, "Attraction", nil),
			), tea.Batch(
				m.loadUsers(slug),
				m.loadOptions(slug, catalogModel.KindFlight),
				m.loadOptions(slug, catalogModel.KindRestaurant),
				m.loadOptions(slug, catalogModel.KindAttraction),
			)
	case page.SlugCheckFlights:
		return newForm(textField(fieldAirport, "Airport", reportModel.DefaultAirport)), nil
	case page.SlugDeleteBooking:
		return newForm(
			choiceField(fieldUser, "User", nil),
			choiceField(fieldBooking, "Booking", nil),
		), m.loadUsers(slug)
	case page.SlugCheckBookings:
		return newForm(choiceField(fieldUser, "User", nil)), m.loadUsers(slug)
	}

	return nil, nil
}

func paramFields(report reportDto.ReportResponse) []*field {
	fields := make([]*field, len(report.Params))
	for i, param := range report.Params {
		fields[i] = textField(param.Name, param.Label, param.Default)
	}

	return fields
}

func (m *Model) onChange(fieldName string) tea.Cmd {
	slug := m.slug()

	switch {
	case slug == page.SlugQueries && fieldName == fieldReport:
		index := m.form.field(fieldReport).selected
		if index < len(m.reports) {
			m.form.replaceFrom(1, paramFields(m.reports[index])...)
		}
	case slug == page.SlugDeleteBooking && fieldName == fieldUser:
		return m.loadSummaries(slug, m.form.field(fieldUser).value())
	}

	return nil
}

func (m *Model) submit() tea.Cmd {
	slug := m.slug()
	values := m.form.values()
	ctx := m.ctx
	services := m.app.Services

	switch slug {
	case page.SlugViewData:
		return func() tea.Msg {
			res, err := services.Table.Browse(ctx, values[fieldTable], gDto.QueryParams{})

			return resultMsg{page: slug, frame: &res.Frame, err: err}
		}
	case page.SlugQueries:
		params := make(map[string]string, len(values))
		for name, value := range values {
			if name != fieldReport {
				params[name] = value
			}
		}

		return func() tea.Msg {
			res, err := services.Report.Run(ctx, values[fieldReport], params, false)

			return resultMsg{page: slug, frame: &res.Frame, err: err}
		}
	case page.SlugAddUser:
		req := userDto.CreateUserRequest{
			Username:    values[fieldUsername],
			Email:       values[fieldEmail],
			Nationality: values[fieldNationality],
		}

		return func() tea.Msg {
			res, err := services.User.Create(ctx, req)
			if err != nil {
				return resultMsg{page: slug, err: err}
			}

			return resultMsg{page: slug, message: fmt.Sprintf("User %s added with ID %d.", res.Username, res.UserID)}
		}
	case page.SlugMakeBooking:
		return m.makeBooking(slug, values)
	case page.SlugCheckFlights:
		return func() tea.Msg {
			res, err := services.Report.Departures(ctx, values[fieldAirport])

			return resultMsg{page: slug, frame: &res.Frame, err: err}
		}
	case page.SlugDeleteBooking:
		booking := m.form.field(fieldBooking)
		if booking.value() == "" {
			m.err = errNoBooking

			return nil
		}

		id, err := strconv.ParseInt(booking.value(), 10, 64)
		if err != nil {
			m.err = err

			return nil
		}

		m.confirm = newConfirmation("Delete Booking", fmt.Sprintf("Delete %s?", booking.selectedLabel()), func() tea.Cmd {
			return func() tea.Msg {
				res, err := services.Booking.Delete(ctx, id)
				if err != nil {
					return resultMsg{page: slug, err: err}
				}

				if res.Deleted == 0 {
					return resultMsg{page: slug, message: fmt.Sprintf("Booking %d no longer exists.", id)}
				}

				return resultMsg{page: slug, message: fmt.Sprintf("Booking %d deleted.", id)}
			}
		})
		m.focus = focusConfirm

		return nil
	case page.SlugCheckBookings:
		userID, err := parseChoiceID(values[fieldUser])
		if err != nil {
			m.err = err

			return nil
		}

		return func() tea.Msg {
			res, err := services.Booking.GetAll(ctx, gDto.QueryParams{}, &userID)
			if err != nil {
				return resultMsg{page: slug, err: err}
			}

			frame := bookingsFrame(res.Bookings)

			return resultMsg{page: slug, frame: &frame}
		}
	}

	return nil
}

func (m *Model) makeBooking(slug string, values map[string]string) tea.Cmd {
	userID, err := parseChoiceID(values[fieldUser])
	if err != nil {
		m.err = err

		return nil
	}

	req := bookingDto.CreateBookingRequest{UserID: userID, BookingDate: values[fieldBookingDate]}

	for kind, target := range map[string]**int64{
		catalogModel.KindFlight:     &req.FlightID,
		catalogModel.KindRestaurant: &req.RestaurantID,
		catalogModel.KindAttraction: &req.AttractionID,
	} {
		if values[kind] == "" {
			continue
		}

		id, err := strconv.ParseInt(values[kind], 10, 64)
		if err != nil {
			m.err = err

			return nil
		}

		*target = &id
	}

	ctx := m.ctx
	services := m.app.Services

	return func() tea.Msg {
		res, err := services.Booking.Create(ctx, req)
		if err != nil {
			return resultMsg{page: slug, err: err}
		}

		return resultMsg{page: slug, message: fmt.Sprintf("Booking %d created. Total cost: %s", res.BookingID, res.TotalCost)}
	}
}

func parseChoiceID(value string) (int64, error) {
	if value == "" {
		return 0, errNoUser
	}

	return strconv.ParseInt(value, 10, 64) //nolint:wrapcheck
}

func bookingsFrame(bookings []bookingDto.BookingResponse) gDto.Frame {
	frame := gDto.NewFrame([]string{"BookingID", "UserID", "BookingDate", "TotalCost"})
	for _, booking := range bookings {
		frame.Append([]any{booking.BookingID, booking.UserID, booking.BookingDate, booking.TotalCost})
	}

	return frame
}

func (m *Model) loadUsers(slug string) tea.Cmd {
	ctx := m.ctx
	users := m.app.Services.User

	return func() tea.Msg {
		res, err := users.Names(ctx)
		if err != nil {
			return choicesMsg{page: slug, field: fieldUser, err: err}
		}

		choices := make([]choice, len(res.Users))
		for i, user := range res.Users {
			choices[i] = choice{Label: user.Username, Value: strconv.FormatInt(user.UserID, 10)}
		}

		return choicesMsg{page: slug, field: fieldUser, choices: choices}
	}
}

func (m *Model) loadOptions(slug, kind string) tea.Cmd {
	ctx := m.ctx
	catalog := m.app.Services.Catalog

	return func() tea.Msg {
		res, err := catalog.Options(ctx, kind)
		if err != nil {
			return choicesMsg{page: slug, field: kind, err: err}
		}

		choices := []choice{noneChoice}
		for _, option := range res.Options {
			choices = append(choices, choice{Label: option.Name, Value: strconv.FormatInt(option.ID, 10)})
		}

		return choicesMsg{page: slug, field: kind, choices: choices}
	}
}

func (m *Model) loadSummaries(slug, user string) tea.Cmd {
	if user == "" {
		return nil
	}

	ctx := m.ctx
	bookings := m.app.Services.Booking

	return func() tea.Msg {
		userID, err := strconv.ParseInt(user, 10, 64)
		if err != nil {
			return choicesMsg{page: slug, field: fieldBooking, err: err}
		}

		res, err := bookings.GetSummaries(ctx, userID)
		if err != nil {
			return choicesMsg{page: slug, field: fieldBooking, err: err}
		}

		choices := make([]choice, len(res.Bookings))
		for i, summary := range res.Bookings {
			choices[i] = choice{Label: summary.Label, Value: strconv.FormatInt(summary.BookingID, 10)}
		}

		if len(choices) == 0 {
			choices = []choice{{Label: "No bookings", Value: ""}}
		}

		return choicesMsg{page: slug, field: fieldBooking, choices: choices}
	}
}
