// Package databasetest opens throwaway in-memory SQLite databases carrying
// the travel schema, for tests that exercise the real sqlx stack.
package databasetest

import (
	"testing"
	"travel/infras/database"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE "User" (
		"UserID" INTEGER PRIMARY KEY AUTOINCREMENT,
		"Username" TEXT NOT NULL,
		"Email" TEXT,
		"Nationality" TEXT
	)`,
	`CREATE TABLE "Booking" (
		"BookingID" INTEGER PRIMARY KEY AUTOINCREMENT,
		"UserID" INTEGER NOT NULL,
		"BookingDate" DATE NOT NULL,
		"TotalCost" DECIMAL(10,2) NOT NULL
	)`,
	`CREATE TABLE "Airport" (
		"AirportID" INTEGER PRIMARY KEY,
		"AirportName" TEXT NOT NULL
	)`,
	`CREATE TABLE "Airline" (
		"AirlineID" INTEGER PRIMARY KEY,
		"AirlineName" TEXT NOT NULL
	)`,
	`CREATE TABLE "Flight" (
		"FlightID" INTEGER PRIMARY KEY,
		"FlightNumber" TEXT NOT NULL,
		"AirlineID" INTEGER,
		"DepartureAirportID" INTEGER,
		"ArrivalAirportID" INTEGER,
		"DepartureTime" DATETIME,
		"ArrivalTime" DATETIME,
		"Price" DECIMAL(10,2) NOT NULL
	)`,
	`CREATE TABLE "Region" (
		"RegionID" INTEGER PRIMARY KEY,
		"RegionName" TEXT NOT NULL
	)`,
	`CREATE TABLE "Attraction" (
		"AttractionID" INTEGER PRIMARY KEY,
		"AttractionName" TEXT NOT NULL,
		"RegionID" INTEGER,
		"EntryFee" DECIMAL(10,2) NOT NULL
	)`,
	`CREATE TABLE "Nightclub" (
		"AttractionID" INTEGER PRIMARY KEY,
		"Location" TEXT,
		"OpeningHours" TEXT,
		"MusicType" TEXT
	)`,
	`CREATE TABLE "Restaurant" (
		"RestaurantID" INTEGER PRIMARY KEY,
		"RestaurantName" TEXT NOT NULL,
		"RegionID" INTEGER
	)`,
	`CREATE TABLE "Review" (
		"ReviewID" INTEGER PRIMARY KEY,
		"UserID" INTEGER,
		"EntityType" TEXT,
		"RestaurantID" INTEGER,
		"Rating" INTEGER
	)`,
	`CREATE TABLE "Dish" (
		"DishID" INTEGER PRIMARY KEY,
		"DishName" TEXT NOT NULL,
		"RestaurantID" INTEGER,
		"TypicalPrice" DECIMAL(10,2) NOT NULL
	)`,
}

// fixture is the reference data loaded by NewSeeded.
var fixture = []string{
	`INSERT INTO "User" ("UserID", "Username", "Email", "Nationality") VALUES
		(1, 'kofi', 'kofi@example.com', 'Ghanaian'),
		(2, 'ama', 'ama@example.com', 'Ghanaian'),
		(3, 'lena', 'lena@example.com', 'German')`,
	`INSERT INTO "Airport" ("AirportID", "AirportName") VALUES
		(1, 'Kotoka International Airport'),
		(2, 'Kumasi Airport')`,
	`INSERT INTO "Airline" ("AirlineID", "AirlineName") VALUES (1, 'Africa World Airlines')`,
	`INSERT INTO "Flight" ("FlightID", "FlightNumber", "AirlineID", "DepartureAirportID", "ArrivalAirportID", "DepartureTime", "ArrivalTime", "Price") VALUES
		(10, 'AW101', 1, 1, 2, '2024-07-10 08:00:00', '2024-07-10 09:00:00', 500),
		(11, 'AW102', 1, 2, 1, '2024-07-10 12:00:00', '2024-07-10 13:00:00', 420.50),
		(12, 'AW103', 1, 1, 2, '2024-07-11 08:00:00', '2024-07-11 09:00:00', 510)`,
	`INSERT INTO "Region" ("RegionID", "RegionName") VALUES
		(1, 'Greater Accra'),
		(2, 'Ashanti'),
		(3, 'Volta')`,
	`INSERT INTO "Attraction" ("AttractionID", "AttractionName", "RegionID", "EntryFee") VALUES
		(20, 'Kwame Nkrumah Mausoleum', 1, 25),
		(21, 'Manhyia Palace Museum', 2, 30),
		(22, 'Republic Bar', 1, 0.75)`,
	`INSERT INTO "Nightclub" ("AttractionID", "Location", "OpeningHours", "MusicType") VALUES
		(22, 'Osu', '20:00-04:00', 'Afrobeat')`,
	`INSERT INTO "Restaurant" ("RestaurantID", "RestaurantName", "RegionID") VALUES
		(30, 'Buka', 1),
		(31, 'Chez Clarisse', 1),
		(32, 'Kumasi Chop Bar', 2),
		(33, 'Empty Kitchen', 3)`,
	`INSERT INTO "Dish" ("DishID", "DishName", "RestaurantID", "TypicalPrice") VALUES
		(40, 'Jollof Rice', 30, 50),
		(41, 'Banku and Tilapia', 30, 65),
		(42, 'Attieke', 31, 45.25),
		(43, 'Fufu', 32, 35)`,
	`INSERT INTO "Review" ("ReviewID", "UserID", "EntityType", "RestaurantID", "Rating") VALUES
		(50, 1, 'Restaurant', 30, 5),
		(51, 2, 'Restaurant', 30, 4),
		(52, 1, 'Restaurant', 31, 3),
		(53, 3, 'Restaurant', 32, 4),
		(54, 3, 'Attraction', 31, 1)`,
}

// New opens an empty in-memory database with the schema applied. The pool is
// pinned to one connection so every query sees the same memory database.
func New(t *testing.T) *database.Connection {
	t.Helper()

	db, err := sqlx.Open(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	exec(t, db, schema)

	return database.NewWithDB(db, database.DriverSQLite)
}

// NewSeeded is New plus the reference fixture.
func NewSeeded(t *testing.T) *database.Connection {
	t.Helper()

	conn := New(t)
	exec(t, conn.DB, fixture)

	return conn
}

func exec(t *testing.T, db *sqlx.DB, statements []string) {
	t.Helper()

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			t.Fatalf("exec %q: %v", statement, err)
		}
	}
}
