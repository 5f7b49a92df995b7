package memory

import (
	"time"

	"github.com/geocoder89/roster/internal/domain/user"
)

// seedUsers returns a fresh copy of the reference roster on every call.
func seedUsers() []user.User {
	return []user.User{
		{
			ID:          "1",
			FirstName:   "liam",
			LastName:    "cohen",
			DateOfBirth: mustDate("1989-03-14"),
			JobTitle:    "software engineer",
			Department:  user.DepartmentEngineering,
			Email:       "liam.cohen@company.com",
			CreatedAt:   mustTime("2025-02-02T10:15:23Z"),
		},
		{
			ID:          "2",
			FirstName:   "noa",
			LastName:    "levi",
			DateOfBirth: mustDate("1996-07-30"),
			JobTitle:    "hr generalist",
			Department:  user.DepartmentHR,
			Email:       "noa.levi@company.com",
			CreatedAt:   mustTime("2025-03-14T08:03:11Z"),
		},
		{
			ID:          "3",
			FirstName:   "david",
			LastName:    "rosen",
			DateOfBirth: mustDate("1982-01-09"),
			JobTitle:    "senior product manager",
			Department:  user.DepartmentMarketing,
			Email:       "david.rosen@company.com",
			CreatedAt:   mustTime("2025-01-05T14:22:45Z"),
		},
		{
			ID:          "4",
			FirstName:   "maya",
			LastName:    "katz",
			DateOfBirth: mustDate("1990-10-21"),
			JobTitle:    "data analyst",
			Department:  user.DepartmentFinance,
			Email:       "maya.katz@company.com",
			CreatedAt:   mustTime("2024-11-18T09:12:07Z"),
		},
		{
			ID:          "5",
			FirstName:   "amir",
			LastName:    "bar",
			DateOfBirth: mustDate("1985-05-02"),
			JobTitle:    "devops engineer",
			Department:  user.DepartmentEngineering,
			Email:       "amir.bar@company.com",
			CreatedAt:   mustTime("2025-02-14T07:40:59Z"),
		},
		{
			ID:          "6",
			FirstName:   "tal",
			LastName:    "shalev",
			DateOfBirth: mustDate("1970-12-19"),
			JobTitle:    "operations manager",
			Department:  user.DepartmentOperations,
			Email:       "tal.shalev@company.com",
			CreatedAt:   mustTime("2024-10-01T16:33:21Z"),
		},
		{
			ID:          "7",
			FirstName:   "yael",
			LastName:    "feldman",
			DateOfBirth: mustDate("1992-04-27"),
			JobTitle:    "marketing specialist",
			Department:  user.DepartmentMarketing,
			Email:       "yael.feldman@company.com",
			CreatedAt:   mustTime("2025-03-03T11:05:13Z"),
		},
		{
			ID:          "8",
			FirstName:   "ron",
			LastName:    "ben-ari",
			DateOfBirth: mustDate("1987-09-05"),
			JobTitle:    "account executive",
			Department:  user.DepartmentSales,
			Email:       "ron.ben-ari@company.com",
			CreatedAt:   mustTime("2024-09-22T13:49:00Z"),
		},
		{
			ID:          "9",
			FirstName:   "eden",
			LastName:    "mizrahi",
			DateOfBirth: mustDate("1998-02-11"),
			JobTitle:    "finance associate",
			Department:  user.DepartmentFinance,
			Email:       "eden.mizrahi@company.com",
			CreatedAt:   mustTime("2025-01-28T18:22:34Z"),
		},
		{
			ID:          "10",
			FirstName:   "itay",
			LastName:    "oren",
			DateOfBirth: mustDate("1968-06-16"),
			JobTitle:    "solutions architect",
			Department:  user.DepartmentEngineering,
			Email:       "itay.oren@company.com",
			CreatedAt:   mustTime("2024-08-10T07:58:12Z"),
		},
		{
			ID:          "11",
			FirstName:   "shira",
			LastName:    "aviv",
			DateOfBirth: mustDate("1984-11-03"),
			JobTitle:    "people operations partner",
			Department:  user.DepartmentHR,
			Email:       "shira.aviv@company.com",
			CreatedAt:   mustTime("2024-12-19T12:00:00Z"),
		},
		{
			ID:          "12",
			FirstName:   "yair",
			LastName:    "shalom",
			DateOfBirth: mustDate("1993-08-25"),
			JobTitle:    "qa engineer",
			Department:  user.DepartmentEngineering,
			Email:       "yair.shalom@company.com",
			CreatedAt:   mustTime("2025-02-01T09:30:44Z"),
		},
		{
			ID:          "13",
			FirstName:   "ella",
			LastName:    "dahan",
			DateOfBirth: mustDate("1990-01-17"),
			JobTitle:    "content strategist",
			Department:  user.DepartmentMarketing,
			Email:       "ella.dahan@company.com",
			CreatedAt:   mustTime("2024-11-25T21:14:07Z"),
		},
		{
			ID:          "14",
			FirstName:   "dan",
			LastName:    "izraeli",
			DateOfBirth: mustDate("1975-03-08"),
			JobTitle:    "finance controller",
			Department:  user.DepartmentFinance,
			Email:       "dan.israeli@company.com",
			CreatedAt:   mustTime("2024-07-29T06:12:55Z"),
		},
		{
			ID:          "15",
			FirstName:   "lea",
			LastName:    "tal",
			DateOfBirth: mustDate("1980-05-26"),
			JobTitle:    "customer success manager",
			Department:  user.DepartmentSales,
			Email:       "lea.tal@company.com",
			CreatedAt:   mustTime("2024-10-12T15:45:39Z"),
		},
		{
			ID:          "16",
			FirstName:   "asaf",
			LastName:    "zan",
			DateOfBirth: mustDate("1999-12-04"),
			JobTitle:    "junior software engineer",
			Department:  user.DepartmentEngineering,
			Email:       "asaf.zan@company.com",
			CreatedAt:   mustTime("2025-03-22T10:10:10Z"),
		},
		{
			ID:          "17",
			FirstName:   "tamar",
			LastName:    "golan",
			DateOfBirth: mustDate("1986-07-12"),
			JobTitle:    "brand manager",
			Department:  user.DepartmentMarketing,
			Email:       "tamar.golan@company.com",
			CreatedAt:   mustTime("2024-12-30T08:08:08Z"),
		},
		{
			ID:          "18",
			FirstName:   "nir",
			LastName:    "menachem",
			DateOfBirth: mustDate("1970-02-14"),
			JobTitle:    "head of operations",
			Department:  user.DepartmentOperations,
			Email:       "nir.menachem@company.com",
			CreatedAt:   mustTime("2024-06-18T19:20:21Z"),
		},
		{
			ID:          "19",
			FirstName:   "ruth",
			LastName:    "alon",
			DateOfBirth: mustDate("1979-09-29"),
			JobTitle:    "people n culture lead",
			Department:  user.DepartmentHR,
			Email:       "ruth.alon@company.com",
			CreatedAt:   mustTime("2024-08-21T04:50:33Z"),
		},
		{
			ID:          "20",
			FirstName:   "gal",
			LastName:    "peretz",
			DateOfBirth: mustDate("1996-06-01"),
			JobTitle:    "sales development representative",
			Department:  user.DepartmentSales,
			Email:       "gal.peretz@company.com",
			CreatedAt:   mustTime("2025-02-09T22:01:59Z"),
		},
		{
			ID:          "21",
			FirstName:   "inbar",
			LastName:    "asher",
			DateOfBirth: mustDate("1988-04-05"),
			JobTitle:    "money analyst",
			Department:  user.DepartmentFinance,
			Email:       "inbar.asher@company.com",
			CreatedAt:   mustTime("2025-01-11T12:34:56Z"),
		},
	}
}

func mustDate(s string) user.Date {
	d, err := user.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
